package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/generation"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/prefs"
)

// DefaultCopyNoticeDuration is how long the copy confirmation stays up.
const DefaultCopyNoticeDuration = 3 * time.Second

// ErrRequestInFlight is returned by Submit and Reset while Loading.
var ErrRequestInFlight = errors.New("a generation request is already in progress")

// ClipboardWriter receives copied replies.
type ClipboardWriter interface {
	WriteText(text string) error
}

// Option configures a Session.
type Option func(*Session)

// WithClipboard sets where CopyResult writes. Without one, copies only
// raise the notice.
func WithClipboard(w ClipboardWriter) Option {
	return func(s *Session) { s.clipboard = w }
}

// WithCopyNoticeDuration overrides DefaultCopyNoticeDuration.
func WithCopyNoticeDuration(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.copyNoticeFor = d
		}
	}
}

// WithLogger sets the logger used for request and clipboard diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is the state machine behind one reply composer. See the package
// documentation for the phase diagram.
type Session struct {
	client    generation.Client
	store     prefs.ThemeStore
	clipboard ClipboardWriter
	log       *slog.Logger

	copyNoticeFor time.Duration

	mu        sync.Mutex
	state     Snapshot
	inflight  *Task
	copyGen   uint64
	copyTimer *time.Timer
	observers map[int]func(Snapshot)
	nextObsID int
}

// New creates an Idle session. The theme is read from store once, here; a
// read failure is logged and leaves the theme Light.
func New(client generation.Client, store prefs.ThemeStore, opts ...Option) *Session {
	s := &Session{
		client:        client,
		store:         store,
		copyNoticeFor: DefaultCopyNoticeDuration,
		observers:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.ComponentLogger("Session")
	}

	if store != nil {
		mode, err := store.Read()
		if err != nil {
			s.log.Warn("failed to read theme preference", "error", err)
		}
		s.state.Theme = mode
	}
	return s
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive a Snapshot after every change and
// returns a func that removes it.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// notify delivers snap to every observer. Must be called without s.mu held.
func (s *Session) notify(snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// setPhase must be called with s.mu held.
func (s *Session) setPhase(p Phase) {
	if s.state.Phase != p {
		s.log.Debug("phase transition", "from", s.state.Phase, "to", p)
		s.state.Phase = p
	}
}

func (s *Session) clearError() {
	s.state.ErrorMessage = ""
	s.state.ErrorKind = NoError
}

// UpdateContent replaces the email text. The phase is left alone; a pending
// validation error is cleared once the text is no longer blank. Allowed while
// Loading; the in-flight request is unaffected.
func (s *Session) UpdateContent(text string) {
	s.mu.Lock()
	s.state.Content = text
	if s.state.ErrorKind == ValidationError && strings.TrimSpace(text) != "" {
		s.clearError()
	}
	snap := s.state
	s.mu.Unlock()

	s.notify(snap)
}

// UpdateTone sets the tone hint. Any string is accepted.
func (s *Session) UpdateTone(tone string) {
	s.mu.Lock()
	s.state.Tone = tone
	snap := s.state
	s.mu.Unlock()

	s.notify(snap)
}

// Submit validates the content and starts a generation request.
//
// While Loading it returns ErrRequestInFlight and changes nothing. Blank
// content moves the session to Error and returns a KindValidation error
// without contacting the client. Otherwise the session enters Loading and the
// returned Task resolves once the outcome has been applied.
//
// ctx supplies values only: requests are never cancelled, so its
// cancellation is ignored.
func (s *Session) Submit(ctx context.Context) (*Task, error) {
	s.mu.Lock()
	if s.state.Phase == Loading {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}

	if strings.TrimSpace(s.state.Content) == "" {
		s.state.Result = ""
		s.state.ErrorMessage = perrors.ContentRequiredMessage
		s.state.ErrorKind = ValidationError
		s.setPhase(Error)
		snap := s.state
		s.mu.Unlock()

		s.notify(snap)
		return nil, perrors.ContentRequired()
	}

	req := generation.Request{EmailContent: s.state.Content, Tone: s.state.Tone}
	task := newTask(req)
	s.inflight = task
	s.state.Result = ""
	s.clearError()
	s.setPhase(Loading)
	snap := s.state
	s.mu.Unlock()

	s.notify(snap)
	go s.run(context.WithoutCancel(ctx), task)
	return task, nil
}

func (s *Session) run(ctx context.Context, task *Task) {
	start := time.Now()
	resp, err := s.client.Generate(ctx, task.Request)

	var outcome Outcome
	s.mu.Lock()
	if err != nil {
		s.log.Error("generation failed", "error", err, "elapsed", time.Since(start))
		outcome.Err = err
		s.state.Result = ""
		s.state.ErrorMessage = perrors.GenerationFailedMessage
		s.state.ErrorKind = GenerationError
		s.setPhase(Error)
	} else {
		outcome.Result = resp.Text()
		s.log.Info("reply generated", "bytes", len(outcome.Result), "elapsed", time.Since(start))
		s.state.Result = outcome.Result
		s.clearError()
		s.setPhase(Success)
	}
	s.inflight = nil
	snap := s.state
	s.mu.Unlock()

	s.notify(snap)
	task.finish(outcome)
}

// InFlight returns the running Task, or nil when not Loading.
func (s *Session) InFlight() *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight
}

// Reset clears content, tone, result and error and returns to Idle. It
// returns ErrRequestInFlight while Loading. Theme and copy notice are kept.
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.state.Phase == Loading {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	s.state.Content = ""
	s.state.Tone = ""
	s.state.Result = ""
	s.clearError()
	s.setPhase(Idle)
	snap := s.state
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// CopyResult copies the reply to the clipboard and raises the copy notice,
// which clears itself after the configured duration. It does nothing and
// returns false unless a reply is available. Clipboard failures are logged,
// not returned.
func (s *Session) CopyResult() bool {
	s.mu.Lock()
	if s.state.Phase != Success {
		s.mu.Unlock()
		return false
	}
	result := s.state.Result

	s.copyGen++
	gen := s.copyGen
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.copyTimer = time.AfterFunc(s.copyNoticeFor, func() { s.expireCopyNotice(gen) })
	s.state.CopyNotice = true
	snap := s.state
	s.mu.Unlock()

	if s.clipboard != nil {
		if err := s.clipboard.WriteText(result); err != nil {
			s.log.Warn("clipboard write failed", "error", err)
		}
	}

	s.notify(snap)
	return true
}

// expireCopyNotice clears the notice unless a newer copy replaced it.
func (s *Session) expireCopyNotice(gen uint64) {
	s.mu.Lock()
	if gen != s.copyGen || !s.state.CopyNotice {
		s.mu.Unlock()
		return
	}
	s.state.CopyNotice = false
	s.copyTimer = nil
	snap := s.state
	s.mu.Unlock()

	s.notify(snap)
}

// ToggleTheme flips between light and dark and persists the new mode. The
// flip is kept even when persisting fails; the write error is returned.
func (s *Session) ToggleTheme() (prefs.Mode, error) {
	s.mu.Lock()
	mode := s.state.Theme.Toggle()
	s.state.Theme = mode
	snap := s.state
	s.mu.Unlock()

	var err error
	if s.store != nil {
		if err = s.store.Write(mode); err != nil {
			s.log.Warn("failed to persist theme", "theme", mode, "error", err)
			if perrors.GetKind(err) != perrors.KindIO {
				err = perrors.E(perrors.Op("session.ToggleTheme"), perrors.KindIO, err)
			}
		}
	}

	s.notify(snap)
	return mode, err
}
