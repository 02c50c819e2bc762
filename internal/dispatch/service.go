package dispatch

import (
	"context"
	"log/slog"
	"strings"

	"notify-dispatch/internal/telephony"
	"notify-dispatch/pkg/logger"
)

const (
	opSendText  = "send_text"
	opPlaceCall = "place_call"
)

// Capabilities is the read side of the provider client manager.
// telephony.ClientManager satisfies it; tests substitute their own.
type Capabilities interface {
	Messaging() (telephony.Messaging, bool)
	Voice() (telephony.Voice, bool)
}

// Config carries the settings the service validates against on every request.
type Config struct {
	// SenderNumber is the SMS sender and the default caller id.
	SenderNumber string
}

// Service validates notification requests and forwards each one to exactly one provider call.
//
// Contract:
// - Preconditions are checked in a fixed order and the first failure wins.
// - Every outcome, including provider errors, comes back as a Result; nothing panics or escapes.
// - No retry, dedup or timeout here; the provider client owns its own timeout.
type Service struct {
	caps   Capabilities
	sender string
}

func NewService(caps Capabilities, cfg Config) *Service {
	return &Service{caps: caps, sender: strings.TrimSpace(cfg.SenderNumber)}
}

// SendText sends message to the recipient `to` from the configured sender number.
// message is taken as decoded JSON so a non-string payload is rejected here
// rather than silently coerced by the binder.
func (s *Service) SendText(ctx context.Context, to string, message any) Result {
	messaging, ok := s.messaging()
	if !ok {
		return s.fail(ctx, opSendText, to, &Failure{Kind: KindUnavailable, Message: "messaging client is not initialized"})
	}
	if s.sender == "" {
		return s.fail(ctx, opSendText, to, &Failure{Kind: KindConfiguration, Message: "PROVIDER_NUMBER is not set; it is required as the sender number"})
	}
	if strings.TrimSpace(to) == "" {
		return s.fail(ctx, opSendText, to, &Failure{Kind: KindInvalidArgument, Message: "recipient 'to' is required"})
	}
	text, ok := message.(string)
	if !ok {
		return s.fail(ctx, opSendText, to, &Failure{Kind: KindInvalidArgument, Message: "'message' must be a string"})
	}

	resp, err := messaging.SendSMS(ctx, telephony.SMSRequest{From: s.sender, To: to, Text: text})
	if err != nil {
		return s.fail(ctx, opSendText, to, &Failure{Kind: KindProvider, Message: "sms send failed", Err: err})
	}

	logger.From(ctx).Info("sms sent", logger.Operation(opSendText), logger.Recipient(to))
	return succeeded(resp)
}

type callOptions struct {
	callerID string
}

// CallOption customizes a single PlaceCall.
type CallOption func(*callOptions)

// WithCallerID overrides the configured default caller id. Blank values are ignored.
func WithCallerID(id string) CallOption {
	return func(o *callOptions) {
		if id = strings.TrimSpace(id); id != "" {
			o.callerID = id
		}
	}
}

// PlaceCall starts an outbound call to `to` handled by the provider application appRef.
// The caller id is resolved once, up front, from the options or the configured sender number.
func (s *Service) PlaceCall(ctx context.Context, to, appRef string, opts ...CallOption) Result {
	o := callOptions{callerID: s.sender}
	for _, opt := range opts {
		opt(&o)
	}
	from := o.callerID

	voice, ok := s.voice()
	if !ok {
		return s.fail(ctx, opPlaceCall, to, &Failure{Kind: KindUnavailable, Message: "voice client is not initialized"})
	}
	if from == "" {
		return s.fail(ctx, opPlaceCall, to, &Failure{Kind: KindConfiguration, Message: "caller id is not set; provide 'from' or set PROVIDER_NUMBER"})
	}
	if strings.TrimSpace(to) == "" {
		return s.fail(ctx, opPlaceCall, to, &Failure{Kind: KindInvalidArgument, Message: "recipient 'to' is required"})
	}
	if strings.TrimSpace(appRef) == "" {
		return s.fail(ctx, opPlaceCall, to, &Failure{Kind: KindInvalidArgument, Message: "application reference 'appRef' is required"})
	}

	resp, err := voice.CreateCall(ctx, telephony.CallRequest{From: from, To: to, AppRef: appRef})
	if err != nil {
		return s.fail(ctx, opPlaceCall, to, &Failure{Kind: KindProvider, Message: "call creation failed", Err: err})
	}

	logger.From(ctx).Info("call initiated", logger.Operation(opPlaceCall), logger.Recipient(to), "app_ref", appRef)
	return succeeded(resp)
}

func (s *Service) messaging() (telephony.Messaging, bool) {
	if s.caps == nil {
		return nil, false
	}
	m, ok := s.caps.Messaging()
	return m, ok && m != nil
}

func (s *Service) voice() (telephony.Voice, bool) {
	if s.caps == nil {
		return nil, false
	}
	v, ok := s.caps.Voice()
	return v, ok && v != nil
}

func (s *Service) fail(ctx context.Context, op, to string, f *Failure) Result {
	level := slog.LevelError
	if f.Kind == KindInvalidArgument {
		level = slog.LevelWarn
	}
	logger.From(ctx).LogAttrs(ctx, level, "dispatch failed",
		logger.Operation(op),
		slog.String("kind", string(f.Kind)),
		logger.Recipient(to),
		slog.String("reason", f.Message),
		logger.Error(f.Err),
	)
	return failed(f)
}
