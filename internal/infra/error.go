package infra

import (
	"errors"
	"log/slog"

	"parking-portal/internal/pkg/errs"
)

type ClientErrorKind string

// ClientError is any failure talking to the parking API.
type ClientError struct {
	Kind   ClientErrorKind
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e ClientError) Error() string {
	if e.err != nil && e.err.Error() != e.msg {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e ClientError) Unwrap() error {
	return e.err
}

// Message is the text shown to the user: the server's message for API
// errors, the transport error text otherwise.
func (e ClientError) Message() string {
	return e.msg
}

func NewAPIError(status int, msg string) error {
	return ClientError{Kind: KindAPI, Status: status, msg: msg}
}

// NewTransportError keeps the transport error text as the user-facing message.
func NewTransportError(err error) error {
	return ClientError{Kind: KindTransport, msg: err.Error(), err: err}
}

func WrapClientErr(slogger *slog.Logger, kind ClientErrorKind, msg string, err error) error {
	slogger.Warn("Parking API error: "+msg,
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return ClientError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ClientErrorKind) bool {
	var e ClientError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusOf is the HTTP status the parking API answered with, or 0.
func StatusOf(err error) int {
	var e ClientError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// MessageOf prefers the client error message over the full error chain.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e ClientError
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}
	return err.Error()
}

const (
	KindAPI       ClientErrorKind = "API"
	KindTransport ClientErrorKind = "TRANSPORT"
	KindFormat    ClientErrorKind = "FORMAT"
)
