package telephony

import (
	"context"
	"encoding/json"
)

// SMS is the provider's messaging service bound to an authenticated Client.
type SMS struct {
	client *Client
}

func NewSMS(client *Client) *SMS {
	return &SMS{client: client}
}

func (s *SMS) SendSMS(ctx context.Context, req SMSRequest) (json.RawMessage, error) {
	return s.client.post(ctx, smsPath, req)
}
