package httpapi

import (
	"context"
	"net/http"

	"notify-dispatch/internal/dispatch"
	"notify-dispatch/internal/telephony"
	"notify-dispatch/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Dispatcher is the part of dispatch.Service the handlers need.
type Dispatcher interface {
	SendText(ctx context.Context, to string, message any) dispatch.Result
	PlaceCall(ctx context.Context, to, appRef string, opts ...dispatch.CallOption) dispatch.Result
}

// Readiness reports which provider capabilities are usable.
type Readiness interface {
	Status() telephony.Status
}

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: check request shape, call the dispatcher, map the result to a status.
type Handlers struct {
	Dispatch  Dispatcher
	Readiness Readiness

	// StrictStatus maps failure kinds to 400/502/503 instead of a blanket 500.
	StrictStatus bool
}

const (
	msgSMSFailed  = "Failed to send SMS"
	msgCallFailed = "Failed to initiate call"
)

type smsRequest struct {
	To string `json:"to"`
	// Message stays untyped so the dispatcher can reject non-text payloads itself.
	Message any `json:"message"`
}

type callRequest struct {
	To   string `json:"to"`
	App  string `json:"app"`
	From string `json:"from,omitempty"`
}

// SendSMS handles POST /notify/sms.
func (h Handlers) SendSMS(c *gin.Context) {
	if h.Dispatch == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "dispatcher not configured"})
		return
	}
	var req smsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.To == "" || isBlank(req.Message) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing 'to' or 'message'"})
		return
	}

	res := h.Dispatch.SendText(c.Request.Context(), req.To, req.Message)
	if !res.OK() {
		h.fail(c, res, msgSMSFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": res.Response})
}

// PlaceCall handles POST /notify/call.
func (h Handlers) PlaceCall(c *gin.Context) {
	if h.Dispatch == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "dispatcher not configured"})
		return
	}
	var req callRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.To == "" || req.App == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing 'to' or 'app'"})
		return
	}

	var opts []dispatch.CallOption
	if req.From != "" {
		opts = append(opts, dispatch.WithCallerID(req.From))
	}

	res := h.Dispatch.PlaceCall(c.Request.Context(), req.To, req.App, opts...)
	if !res.OK() {
		h.fail(c, res, msgCallFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": res.Response})
}

// Ready handles GET /readyz.
func (h Handlers) Ready(c *gin.Context) {
	var st telephony.Status
	if h.Readiness != nil {
		st = h.Readiness.Status()
	}
	body := gin.H{"messaging": st.Messaging, "voice": st.Voice}
	if st.Messaging && st.Voice {
		body["status"] = "ready"
		c.JSON(http.StatusOK, body)
		return
	}
	body["status"] = "degraded"
	c.JSON(http.StatusServiceUnavailable, body)
}

// fail writes the fixed public message; the failure detail only goes to logs.
func (h Handlers) fail(c *gin.Context, res dispatch.Result, public string) {
	_ = c.Error(res.Err())
	logger.FromGin(c).Debug("dispatch result mapped", "kind", string(res.Kind()))
	c.AbortWithStatusJSON(h.statusFor(res.Kind()), gin.H{"error": public})
}

func (h Handlers) statusFor(kind dispatch.Kind) int {
	if !h.StrictStatus {
		return http.StatusInternalServerError
	}
	switch kind {
	case dispatch.KindInvalidArgument:
		return http.StatusBadRequest
	case dispatch.KindConfiguration, dispatch.KindUnavailable:
		return http.StatusServiceUnavailable
	case dispatch.KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	default:
		return false
	}
}
