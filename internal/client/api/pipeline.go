package api

import (
	"context"
	"net/http"
	"time"
)

// RequestStep decorates an outgoing request. A non-nil error aborts the call
// before anything is sent.
type RequestStep func(ctx context.Context, req *http.Request) error

// ResponseStep observes or rejects a finished exchange. A non-nil error
// replaces the outcome and skips the remaining steps.
type ResponseStep func(ctx context.Context, ex *Exchange) error

// Exchange is one request/response round trip as seen by ResponseSteps.
// Err holds the transport error or *HTTPError, nil on 2xx.
type Exchange struct {
	Operation  string
	Request    *http.Request
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
	Err        error
}

// CredentialSource yields the current bearer credential, "" when absent.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
}

// BearerAuth attaches the session credential. It never sets Content-Type, so
// multipart bodies keep their boundary.
func BearerAuth(src CredentialSource) RequestStep {
	return func(ctx context.Context, req *http.Request) error {
		tok, err := src.Token(ctx)
		if err != nil {
			return err
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		return nil
	}
}

func runRequestSteps(ctx context.Context, steps []RequestStep, req *http.Request) error {
	for _, step := range steps {
		if err := step(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func runResponseSteps(ctx context.Context, steps []ResponseStep, ex *Exchange) error {
	for _, step := range steps {
		if err := step(ctx, ex); err != nil {
			return err
		}
	}
	return nil
}

// unwrap is the terminal stage: the body on success, the original error otherwise.
func unwrap(ex *Exchange) ([]byte, error) {
	if ex.Err != nil {
		return nil, ex.Err
	}
	return ex.Body, nil
}
