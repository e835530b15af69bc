package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodscreen/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:8088/api/v1"
	DefaultTimeout = 5 * time.Second
)

// Call describes one backend operation invocation.
type Call struct {
	Operation   string
	Method      string
	Path        string
	Query       url.Values
	Body        io.Reader
	ContentType string
}

type Client struct {
	baseURL       string
	http          *http.Client
	requestSteps  []RequestStep
	responseSteps []ResponseStep
}

type Option func(*Client)

// WithRequestSteps appends request steps; they run in the given order.
func WithRequestSteps(steps ...RequestStep) Option {
	return func(c *Client) { c.requestSteps = append(c.requestSteps, steps...) }
}

// WithResponseSteps appends response steps; they run in the given order.
func WithResponseSteps(steps ...ResponseStep) Option {
	return func(c *Client) { c.responseSteps = append(c.responseSteps, steps...) }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New builds a client for baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSessionClient is the production wiring: bearer auth from creds, plus
// the given observers after it.
func NewSessionClient(baseURL string, timeout time.Duration, creds CredentialSource, observers ...ResponseStep) *Client {
	return New(baseURL,
		WithTimeout(timeout),
		WithRequestSteps(BearerAuth(creds)),
		WithResponseSteps(observers...),
	)
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Do runs call through the pipeline and returns the raw response body.
func (c *Client) Do(ctx context.Context, call Call) ([]byte, error) {
	u := c.baseURL + call.Path
	if len(call.Query) > 0 {
		u += "?" + call.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, u, call.Body)
	if err != nil {
		return nil, err
	}
	if call.ContentType != "" {
		req.Header.Set("Content-Type", call.ContentType)
	}

	if err := runRequestSteps(ctx, c.requestSteps, req); err != nil {
		return nil, err
	}

	ex := c.send(req)
	ex.Operation = call.Operation

	if err := runResponseSteps(ctx, c.responseSteps, ex); err != nil {
		return nil, err
	}
	return unwrap(ex)
}

func (c *Client) send(req *http.Request) *Exchange {
	ex := &Exchange{Request: req}
	started := time.Now()
	defer func() { ex.Duration = time.Since(started) }()

	resp, err := c.http.Do(req)
	if err != nil {
		ex.Err = err
		return ex
	}
	defer resp.Body.Close()

	ex.StatusCode = resp.StatusCode
	ex.Header = resp.Header

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ex.Err = err
		return ex
	}
	ex.Body = body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ex.Err = &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Header:     resp.Header,
			Body:       body,
		}
	}
	return ex
}

// LogExchanges is a ResponseStep writing one debug record per call.
func LogExchanges(log logging.Logger) ResponseStep {
	return func(ctx context.Context, ex *Exchange) error {
		args := []any{
			"op", ex.Operation,
			"method", ex.Request.Method,
			"path", ex.Request.URL.Path,
			"status", ex.StatusCode,
			"duration", ex.Duration,
		}
		if ex.Err != nil {
			args = append(args, "error", ex.Err)
		}
		log.Debug(ctx, "api call", args...)
		return nil
	}
}
