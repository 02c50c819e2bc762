package telephony

import (
	"context"
	"encoding/json"
)

// Messaging is the SMS capability derived from an authenticated provider client.
//
// Rules:
// - No provider HTTP calls outside telephony adapters.
// - The returned payload is the provider's response body, untouched.
type Messaging interface {
	SendSMS(ctx context.Context, req SMSRequest) (json.RawMessage, error)
}

// Voice is the outbound-call capability derived from an authenticated provider client.
type Voice interface {
	CreateCall(ctx context.Context, req CallRequest) (json.RawMessage, error)
}

// SMSRequest is one outbound text message.
type SMSRequest struct {
	// From and To are E.164 where possible.
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// CallRequest is one outbound voice call.
type CallRequest struct {
	// From is the caller id presented to the callee.
	From string `json:"from"`
	// To is a phone number or a SIP URI.
	To string `json:"to"`

	// AppRef names the provider application that drives the call once answered.
	AppRef string `json:"appRef"`
}
