package certificates

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client fetches the certification list from a single fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
}

// NewClient returns a client for endpoint. A zero timeout leaves the request
// bounded only by ctx.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     newHTTPClient(),
		timeout:  timeout,
	}
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch issues one GET and returns the records in upstream order.
// Errors are *StatusError (matches ErrNotFound) for non-2xx responses,
// *APIError when todoOk is false, and a wrapped error for transport and
// decoding failures.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	id := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("fetch %s: transport error after %s: %v", id, time.Since(start).Round(time.Millisecond), err)
		return nil, fmt.Errorf("get %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("fetch %s: status %d", id, resp.StatusCode)
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		log.Printf("fetch %s: decode failed: %v", id, err)
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.OK {
		log.Printf("fetch %s: api rejected request: %s", id, env.Message)
		return nil, &APIError{Message: env.Message}
	}

	records := env.Data
	if records == nil {
		records = []Record{}
	}
	log.Printf("fetch %s: %d records in %s", id, len(records), time.Since(start).Round(time.Millisecond))
	return records, nil
}

func newHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
		ForceAttemptHTTP2:   true,
		// gzip is negotiated in Fetch and decoded by readBody
		DisableCompression: true,
	}
	return &http.Client{Transport: transport}
}

// readBody reads the response body, decoding it when the server sent gzip.
func readBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return io.ReadAll(resp.Body)
}
