package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client sends push notifications through an Expo-compatible gateway.
// Connection failures and 5xx responses are retried with backoff;
// per-ticket errors come back in the response body and are not retried.
type Client struct {
	gatewayURL string
	c          *retryablehttp.Client
}

func NewClient(gatewayURL string, retryMax int) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.RetryWaitMin = 500 * time.Millisecond
	c.RetryWaitMax = 5 * time.Second
	c.HTTPClient.Timeout = 10 * time.Second
	c.Logger = &retryLogger{l: slog.Default().WithGroup("push")}

	return &Client{
		gatewayURL: gatewayURL,
		c:          c,
	}
}

type Message struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type Ticket struct {
	Status  string `json:"status"` // "ok" or "error"
	ID      string `json:"id"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

// DeviceNotRegistered reports whether the ticket failed because the
// recipient token is gone and should be deactivated.
func (t Ticket) DeviceNotRegistered() bool {
	return t.Status == "error" && t.Details.Error == "DeviceNotRegistered"
}

type sendResponse struct {
	Data []Ticket `json:"data"`
}

// Send pushes one message to all recipient tokens. Tickets are returned
// in recipient order.
func (c *Client) Send(ctx context.Context, msg Message) ([]Ticket, error) {
	j, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+"/push/send", bytes.NewReader(j))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, b)
	}

	var data sendResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return data.Data, nil
}

type retryLogger struct {
	l *slog.Logger
}

func (l *retryLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}
