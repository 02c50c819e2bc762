package telephony

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notify-dispatch/internal/config"
)

const (
	headerAccessKeyID = "X-Access-Key-Id"

	smsPath   = "/v1/sms"
	callsPath = "/v1/calls"

	// maxResponseBytes bounds how much of a provider response is read.
	maxResponseBytes = 1 << 20
	// maxErrorBodyBytes bounds how much of an error body is kept for logs.
	maxErrorBodyBytes = 512
)

// Client is the authenticated handle to the provider API.
// It is built once at startup and shared read-only by the capabilities derived from it.
type Client struct {
	accessKeyID     string
	accessKeySecret string
	baseURL         *url.URL
	http            *http.Client
}

// NewClient builds a provider client. The access key id is required;
// the secret is optional and, when present, is sent as HTTP basic auth.
// A nil httpClient gets a default client bounded by cfg.Timeout.
func NewClient(cfg config.ProviderConfig, httpClient *http.Client) (*Client, error) {
	keyID := strings.TrimSpace(cfg.AccessKeyID)
	if keyID == "" {
		return nil, fmt.Errorf("%w: PROVIDER_ACCESS_KEY_ID is required", ErrConfiguration)
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: PROVIDER_ENDPOINT is required", ErrConfiguration)
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: PROVIDER_ENDPOINT must be an absolute URL, got %q", ErrConfiguration, endpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		accessKeyID:     keyID,
		accessKeySecret: cfg.AccessKeySecret,
		baseURL:         u,
		http:            httpClient,
	}, nil
}

// post sends body as JSON and returns the response payload as received.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.String()+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerAccessKeyID, c.accessKeyID)
	if c.accessKeySecret != "" {
		req.SetBasicAuth(c.accessKeyID, c.accessKeySecret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: truncate(string(raw), maxErrorBodyBytes)}
	}
	return asJSON(raw), nil
}

// asJSON returns raw unchanged when it is JSON. Anything else is carried as a JSON string
// so callers can still embed it in their own JSON responses.
func asJSON(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
