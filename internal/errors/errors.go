// Package errors provides structured error types for replywriter.
// These errors carry the operation that failed and a category that callers
// use to decide how a failure is presented.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindValidation
	KindGeneration
	KindIO
	KindNetwork
	KindConfig
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindValidation:
		return "validation error"
	case KindGeneration:
		return "generation failure"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for replywriter.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Session errors

// ContentRequiredMessage is shown next to the composer when submit is attempted without content.
const ContentRequiredMessage = "Please enter the email content to generate a reply"

// GenerationFailedMessage is the only failure text users see for a failed request.
const GenerationFailedMessage = "Failed to generate email reply. Please try again"

func ContentRequired() error {
	return E(Op("session.Submit"), KindValidation, ContentRequiredMessage)
}

func GenerationFailed(err error) error {
	return E(Op("generation.Generate"), KindGeneration, err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

// Preference store errors
func PrefsReadFailed(path string, err error) error {
	return E(Op("prefs.Read"), KindIO, fmt.Sprintf("failed to read preferences from %s", path), err)
}

func PrefsWriteFailed(path string, err error) error {
	return E(Op("prefs.Write"), KindIO, fmt.Sprintf("failed to write preferences to %s", path), err)
}

// Mail source errors
func MailNotFound(path string, index int) error {
	return E(Op("mailsource.LoadMbox"), KindNotFound, fmt.Sprintf("message %d not found in %s", index, path))
}
