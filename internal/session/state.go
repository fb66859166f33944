package session

import (
	"strings"

	"github.com/zhubert/replywriter/internal/prefs"
)

// Phase is the request lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorKind says which of the two failure paths produced the current error.
type ErrorKind int

const (
	NoError ErrorKind = iota
	// ValidationError means submit was attempted without content. It is shown
	// next to the composer.
	ValidationError
	// GenerationError means the request failed. It is shown in a banner.
	GenerationError
)

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Content      string
	Tone         string
	Phase        Phase
	Result       string
	ErrorMessage string
	ErrorKind    ErrorKind
	Theme        prefs.Mode
	CopyNotice   bool
}

// HasResult reports whether a generated reply is available.
func (s Snapshot) HasResult() bool {
	return s.Phase == Success
}

// HasError reports whether an error message is pending.
func (s Snapshot) HasError() bool {
	return s.Phase == Error && s.ErrorKind != NoError
}

// IsValidationError reports whether the pending error is "content required".
func (s Snapshot) IsValidationError() bool {
	return s.HasError() && s.ErrorKind == ValidationError
}

// CanSubmit is false while a request is in flight.
func (s Snapshot) CanSubmit() bool {
	return s.Phase != Loading
}

// CanReset reports whether a reset would change anything the user entered
// or received. Reset itself is permitted whenever CanSubmit is.
func (s Snapshot) CanReset() bool {
	if s.Phase == Loading {
		return false
	}
	return s.Content != "" || s.Tone != "" || s.HasResult()
}

// ShowBanner reports whether a generation failure should be displayed.
func (s Snapshot) ShowBanner() bool {
	return s.HasError() && s.ErrorKind == GenerationError
}

// ShowInlineError reports whether the "content required" hint belongs under
// the composer: a validation error is pending and the content is still blank.
func (s Snapshot) ShowInlineError() bool {
	return s.IsValidationError() && strings.TrimSpace(s.Content) == ""
}
