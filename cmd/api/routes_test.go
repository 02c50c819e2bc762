package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notify-dispatch/internal/auth"
	"notify-dispatch/internal/config"
	"notify-dispatch/internal/dispatch"
	"notify-dispatch/internal/httpapi"
	"notify-dispatch/internal/rbac"
	"notify-dispatch/internal/telephony"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessaging struct{ calls int }

func (s *stubMessaging) SendSMS(context.Context, telephony.SMSRequest) (json.RawMessage, error) {
	s.calls++
	return json.RawMessage(`{"ref":"sms-1"}`), nil
}

type stubVoice struct{ calls int }

func (s *stubVoice) CreateCall(context.Context, telephony.CallRequest) (json.RawMessage, error) {
	s.calls++
	return json.RawMessage(`{"ref":"call-1"}`), nil
}

type stubCaps struct {
	sms   *stubMessaging
	voice *stubVoice
}

func (s stubCaps) Messaging() (telephony.Messaging, bool) { return s.sms, true }
func (s stubCaps) Voice() (telephony.Voice, bool)         { return s.voice, true }
func (s stubCaps) Status() telephony.Status               { return telephony.Status{Messaging: true, Voice: true} }

func newTestEngine(t *testing.T, authManager *auth.Manager) (*gin.Engine, stubCaps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	caps := stubCaps{sms: &stubMessaging{}, voice: &stubVoice{}}
	h := httpapi.Handlers{
		Dispatch:  dispatch.NewService(caps, dispatch.Config{SenderNumber: "+15550000000"}),
		Readiness: caps,
	}
	r := gin.New()
	registerRoutes(r, h, authManager)
	return r, caps
}

func doJSON(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_HealthAndReady(t *testing.T) {
	r, _ := newTestEngine(t, nil)

	w := doJSON(r, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_NotifyMountedUnderBothPrefixes(t *testing.T) {
	r, caps := newTestEngine(t, nil)

	for _, prefix := range []string{"/notify", "/api/notify"} {
		w := doJSON(r, http.MethodPost, prefix+"/sms", `{"to":"+15551234567","message":"hi"}`, "")
		require.Equal(t, http.StatusOK, w.Code, prefix)
		assert.JSONEq(t, `{"success":true,"response":{"ref":"sms-1"}}`, w.Body.String())

		w = doJSON(r, http.MethodPost, prefix+"/call", `{"to":"+15551234567","app":"app-1"}`, "")
		require.Equal(t, http.StatusOK, w.Code, prefix)
	}
	assert.Equal(t, 2, caps.sms.calls)
	assert.Equal(t, 2, caps.voice.calls)
}

func TestRoutes_AuthEnforcedWhenConfigured(t *testing.T) {
	m, err := auth.NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Minute})
	require.NoError(t, err)
	r, caps := newTestEngine(t, m)

	smsBody := `{"to":"+15551234567","message":"hi"}`
	callBody := `{"to":"+15551234567","app":"app-1"}`

	w := doJSON(r, http.MethodPost, "/notify/sms", smsBody, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	smsOnly, err := m.Issue(time.Now(), "svc-billing", rbac.RoleSMS)
	require.NoError(t, err)

	w = doJSON(r, http.MethodPost, "/notify/sms", smsBody, smsOnly)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/notify/call", callBody, smsOnly)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin, err := m.Issue(time.Now(), "ops", rbac.RoleAdmin)
	require.NoError(t, err)
	w = doJSON(r, http.MethodPost, "/api/notify/call", callBody, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	// health checks stay public
	w = doJSON(r, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, caps.sms.calls)
	assert.Equal(t, 1, caps.voice.calls)
}
