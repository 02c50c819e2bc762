package telephony

import (
	"context"
	"encoding/json"
)

// Calls is the provider's voice service bound to an authenticated Client.
type Calls struct {
	client *Client
}

func NewCalls(client *Client) *Calls {
	return &Calls{client: client}
}

func (c *Calls) CreateCall(ctx context.Context, req CallRequest) (json.RawMessage, error) {
	return c.client.post(ctx, callsPath, req)
}
