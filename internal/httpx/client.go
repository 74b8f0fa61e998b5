package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
)

// Client is a thin JSON transport shared by every node and quote client.
// Retries default to zero: read clients surface failures to their callers,
// which own the retry policy.
type Client struct {
	httpClient *http.Client
	retries    int
	userAgent  string
}

func New(timeout time.Duration, retries int) *Client {
	if retries < 0 {
		retries = 0
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		retries:    retries,
		userAgent:  "puzzlend/1.0",
	}
}

// Response carries the raw payload of a non-transport-failed exchange so
// callers can interpret provider-level error bodies themselves.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do performs the request and returns the response body for any HTTP status.
// Only transport-level failures (dial, TLS, timeout, cancelled context) are
// returned as errors.
func (c *Client) Do(ctx context.Context, req *http.Request) (*Response, error) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, txerr.Wrap(txerr.CodeNetwork, "request cancelled", ctx.Err())
			case <-time.After(backoff(attempt)):
			}
		}

		cloneReq := req.Clone(ctx)
		if req.Body != nil && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, txerr.Wrap(txerr.CodeInternal, "clone request body", err)
			}
			cloneReq.Body = body
		}

		resp, err := c.httpClient.Do(cloneReq)
		if err != nil {
			lastErr = mapNetError(err)
			if attempt < c.retries {
				continue
			}
			return nil, lastErr
		}

		buf, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, txerr.Wrap(txerr.CodeNetwork, "read response body", readErr)
		}

		if resp.StatusCode >= http.StatusInternalServerError && attempt < c.retries {
			lastErr = txerr.Newf(txerr.CodeNetwork, "endpoint unavailable (status %d)", resp.StatusCode)
			continue
		}
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: buf}, nil
	}
	return nil, lastErr
}

// DoJSON performs the request and decodes a 2xx JSON body into out.
// Non-2xx statuses become typed errors; provider error bodies that need
// inspection should go through Do instead.
func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return txerr.Newf(txerr.CodeNetwork, "endpoint unavailable (status %d)", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return txerr.Newf(txerr.CodeMalformed, "unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return txerr.Wrap(txerr.CodeMalformed, "decode response JSON", err)
	}
	return nil
}

func backoff(attempt int) time.Duration {
	base := time.Duration(attempt) * 300 * time.Millisecond
	jitter := time.Duration(rand.Int63n(int64(150 * time.Millisecond)))
	return base + jitter
}

func mapNetError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return txerr.Wrap(txerr.CodeNetwork, "request timed out", err)
	}
	return txerr.Wrap(txerr.CodeNetwork, "request failed", err)
}
