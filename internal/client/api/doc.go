// Package api is the HTTP client for the screening backend.
//
// # Overview
//
// A Client owns one configured http.Client (fixed base URL, 5 second
// timeout) and an explicit pipeline around it:
//
//  1. RequestSteps run in registration order on the outgoing *http.Request.
//     BearerAuth is the stock one: it sets "Authorization: Bearer <token>"
//     when the session holds a credential and touches nothing otherwise.
//  2. The request is sent.
//  3. ResponseSteps run in order on the resulting Exchange (metrics, logs).
//  4. The exchange is unwrapped: callers get the body and nothing else on
//     success, or the original failure on error.
//
// Any step returning an error short-circuits the rest and that error is
// returned unchanged.
//
// # Error Handling
//
// Nothing is retried or classified. Transport failures (including the
// timeout) come back exactly as net/http produced them, usually *url.Error;
// non-2xx answers come back as *HTTPError carrying status and body. Typed
// operations additionally report undecodable bodies with ErrMalformedResponse.
// The backend's own envelope code is left to the caller; see Envelope.Err.
package api
