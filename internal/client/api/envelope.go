package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the body shape every backend endpoint answers with.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Err reports a non-success envelope code as *BackendError.
func (e *Envelope[T]) Err() error {
	if e.Code == http.StatusOK {
		return nil
	}
	return &BackendError{Code: e.Code, Message: e.Message}
}

func decodeEnvelope[T any](op string, body []byte) (*Envelope[T], error) {
	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, op, err)
	}
	return &env, nil
}
