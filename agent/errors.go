package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// Sentinel errors for agent configuration and requests.
var (
	ErrMissingAPIKey     = errors.New("api key is not set")
	ErrMissingModel      = errors.New("model is not set")
	ErrNoMessages        = errors.New("request has no messages")
	ErrInvalidMaxTokens  = errors.New("max tokens must be positive")
	ErrInvalidRole       = errors.New("invalid message role")
	ErrEmptyResponse     = errors.New("remote model returned no text")
	ErrStreamInterrupted = errors.New("stream interrupted")
)

// ErrorKind classifies remote failures for reporting.
type ErrorKind string

const (
	KindAuth       ErrorKind = "auth"
	KindRateLimit  ErrorKind = "rate_limit"
	KindBadRequest ErrorKind = "bad_request"
	KindServer     ErrorKind = "server"
	KindCanceled   ErrorKind = "canceled"
	KindNetwork    ErrorKind = "network"
	KindUnknown    ErrorKind = "unknown"
)

// Error is a classified remote failure. Cause holds the underlying SDK or
// transport error and is reachable through errors.Is / errors.As.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("agent %s (status %d): %v", e.Kind, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("agent %s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts a classified *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindCanceled, Cause: err}
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &Error{Kind: kindForStatus(apiErr.StatusCode), StatusCode: apiErr.StatusCode, Cause: err}
	}

	return &Error{Kind: KindNetwork, Cause: err}
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status >= 500:
		return KindServer
	case status >= 400:
		return KindBadRequest
	default:
		return KindUnknown
	}
}
