// Package transport wraps the HTTP plumbing shared by every backend call:
// base-URL resolution, bearer authentication, optional client-side rate
// limiting, and uniform decoding of JSON responses into typed errors.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/logging"
)

// Client performs authenticated HTTP calls against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	auth    Authenticator
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithAuthenticator sets the request authenticator.
func WithAuthenticator(auth Authenticator) Option {
	return func(c *Client) { c.auth = auth }
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithLogger sets the logger requests are traced through.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a transport client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		auth:    &NoAuth{},
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL resolves a backend path against the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do performs a request with authentication, rate limiting and logging
// applied. Non-nil responses must be closed by the caller.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if err := c.auth.Apply(req); err != nil {
		return nil, err
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.APIError{Endpoint: req.URL.Path, Message: err.Error(), Err: err}
	}
	return resp, nil
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path, query), nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, path, out)
}

// PostJSON performs a POST with a JSON body and decodes the response into
// out. out may be nil when the body is irrelevant.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// PutJSON performs a PUT with a JSON body and decodes the response into out.
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE and decodes the JSON response into out when out
// is non-nil.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.URL(path, query), nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, path, out)
}

// GetRaw performs a GET and returns the raw response body, for exports that
// are not JSON.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path, query), nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(path, resp)
	}
	return io.ReadAll(resp.Body)
}

// MultipartField is one part of a multipart upload.
type MultipartField struct {
	Name     string
	Filename string
	Content  []byte
}

// PostMultipart performs a multipart/form-data POST, with fields carrying
// plain values and files carrying named payloads, and decodes the JSON
// response into out.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []MultipartField, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Name, f.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(f.Content); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.doJSON(req, path, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, nil), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	return c.doJSON(req, path, out)
}

// doJSON runs the request and decodes the response. Any non-2xx status or
// JSON decode failure surfaces as an APIError.
func (c *Client) doJSON(req *http.Request, path string, out any) error {
	resp, err := c.Do(req.Context(), req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &errors.APIError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    "undecodable response body",
			Err:        err,
		}
	}
	return nil
}

func statusError(path string, resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(payload))
	if msg == "" {
		msg = resp.Status
	}
	return &errors.APIError{
		Endpoint:   path,
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed: %s", msg),
	}
}
