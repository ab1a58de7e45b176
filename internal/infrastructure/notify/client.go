// Package notify talks to the external notification service. Delivery is best
// effort: callers route through the queue dispatcher and never fail a parent
// operation on a notification error.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

// Client posts notification payloads to a fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, http: &http.Client{}}
}

// Post sends req as JSON. The context bounds the whole call; the dispatcher
// supplies a per-delivery timeout.
func (c *Client) Post(ctx context.Context, req domain.EmailRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned %s", resp.Status)
	}
	return nil
}
