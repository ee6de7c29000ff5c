package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/logging"
)

const defaultTimeout = 10 * time.Second

// Client talks to one backend. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
	metrics *Metrics
	tokens  TokenSource
	timeout time.Duration
}

// Option configures a Client in New.
type Option func(*Client)

// WithHTTPClient uses a copy of hc; hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.http = &cp
	}
}

// WithTimeout bounds every request, whatever the position of
// WithHTTPClient among the options.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTokenSource sets where the bearer token is read from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds a Client for the API rooted at baseURL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}

	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{base: base, tokens: c.tokens}
	c.log = c.log.With("component", "api")

	return c, nil
}

// Auth returns the client for /api/auth.
func (c *Client) Auth() *AuthClient { return &AuthClient{c: c} }

// Users returns the client for /api/user.
func (c *Client) Users() *UsersClient { return &UsersClient{c: c} }

// Teachers returns the client for /api/teacher.
func (c *Client) Teachers() *TeachersClient { return &TeachersClient{c: c} }

// Sessions returns the client for /api/session.
func (c *Client) Sessions() *SessionsClient { return &SessionsClient{c: c} }

// do sends one request to the path made of elems and decodes a 2xx JSON
// body into out. in, when not nil, is sent as the JSON body. elems must
// already be path-escaped.
func (c *Client) do(ctx context.Context, resource, method string, in, out any, elems ...string) error {
	endpoint := c.baseURL.JoinPath(elems...)
	path := endpoint.EscapedPath()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(resource, method, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.observe(resource, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
