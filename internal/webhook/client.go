package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrTimeout is returned when the remote end does not answer within the client timeout.
	ErrTimeout = errors.New("webhook request timed out")
	// ErrTooLarge is returned when a download exceeds maxDownloadBytes.
	ErrTooLarge = errors.New("download too large")
)

// maxResponseBytes caps how much of a JSON response body is kept.
const maxResponseBytes = 1 << 20

// maxDownloadBytes caps generated documents fetched with Download.
var maxDownloadBytes int64 = 50 << 20

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client posts JSON documents and fetches generated files. It never retries.
type Client struct {
	http *http.Client
}

// NewClient builds a client whose every request is bounded by timeout (0 means no bound).
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// NewClientWith wraps an existing *http.Client.
func NewClientWith(c *http.Client) *Client {
	return &Client{http: c}
}

// PostJSON marshals body, POSTs it to url and reads the whole response.
func (c *Client) PostJSON(ctx context.Context, url string, body any) (*Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, maxResponseBytes)
}

// Download GETs url and returns its body. Non-2xx statuses and bodies over
// maxDownloadBytes are errors.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.do(req, maxDownloadBytes+1)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	if int64(len(resp.Body)) > maxDownloadBytes {
		return nil, fmt.Errorf("get %s: %w", url, ErrTooLarge)
	}
	return resp.Body, nil
}

func (c *Client) do(req *http.Request, limit int64) (*Response, error) {
	url := req.URL.String()
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%s %s: %w", strings.ToLower(req.Method), url, ErrTimeout)
		}
		return nil, fmt.Errorf("%s %s: %w", strings.ToLower(req.Method), url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("read response from %s: %w", url, ErrTimeout)
		}
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
