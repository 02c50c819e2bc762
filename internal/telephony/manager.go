package telephony

import (
	"log/slog"
	"net/http"

	"notify-dispatch/internal/config"
	"notify-dispatch/pkg/logger"
)

// ClientManager owns the provider client and the two capabilities derived from it.
//
// Lifecycle:
//   - Built once by the composition root; there is no retry, reconnect or credential reload.
//   - A failed initialization is logged and kept in InitErr; the process keeps running
//     and both capabilities report absent for its lifetime.
//   - Fields are never written after construction, so concurrent readers need no locking.
type ClientManager struct {
	client    *Client
	messaging Messaging
	voice     Voice
	initErr   error
}

// Status reports which capabilities are usable.
type Status struct {
	Messaging bool `json:"messaging"`
	Voice     bool `json:"voice"`
}

type managerOptions struct {
	httpClient *http.Client
}

type ManagerOption func(*managerOptions)

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(hc *http.Client) ManagerOption {
	return func(o *managerOptions) { o.httpClient = hc }
}

// NewClientManager initializes the provider client from cfg. It never fails:
// configuration problems leave the capabilities absent and are reported via InitErr.
func NewClientManager(cfg config.ProviderConfig, log *slog.Logger, opts ...ManagerOption) *ClientManager {
	if log == nil {
		log = slog.Default()
	}
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}

	m := &ClientManager{}
	client, err := NewClient(cfg, o.httpClient)
	if err != nil {
		m.initErr = err
		log.Error("provider client init failed; messaging and voice disabled", logger.Error(err))
		return m
	}

	m.client = client
	m.messaging = NewSMS(client)
	m.voice = NewCalls(client)
	log.Info("provider client initialized", "endpoint", client.baseURL.Redacted())
	return m
}

// Messaging returns the SMS capability, or false when the client never initialized.
func (m *ClientManager) Messaging() (Messaging, bool) {
	if m == nil || m.messaging == nil {
		return nil, false
	}
	return m.messaging, true
}

// Voice returns the outbound-call capability, or false when the client never initialized.
func (m *ClientManager) Voice() (Voice, bool) {
	if m == nil || m.voice == nil {
		return nil, false
	}
	return m.voice, true
}

// InitErr is the error that left the manager without a client, if any.
func (m *ClientManager) InitErr() error {
	if m == nil {
		return nil
	}
	return m.initErr
}

func (m *ClientManager) Status() Status {
	_, sms := m.Messaging()
	_, voice := m.Voice()
	return Status{Messaging: sms, Voice: voice}
}

// Ready reports whether every capability is usable.
func (m *ClientManager) Ready() bool {
	s := m.Status()
	return s.Messaging && s.Voice
}
