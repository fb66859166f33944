package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/replywriter/internal/app"
	"github.com/zhubert/replywriter/internal/config"
	"github.com/zhubert/replywriter/internal/generation"
	"github.com/zhubert/replywriter/internal/keys"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/prefs"
	"github.com/zhubert/replywriter/internal/session"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and character (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// ReplyDelay is how long the loading frame is shown (default: 800ms)
	ReplyDelay time.Duration

	// ReplyTimeout bounds how long AwaitReply waits (default: 10s)
	ReplyTimeout time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		ReplyDelay:       800 * time.Millisecond,
		ReplyTimeout:     10 * time.Second,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config  ExecutorConfig
	model   *app.Model
	client  *generation.MockClient
	pending tea.Cmd
	frames  []Frame
	log     *slog.Logger

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
		log:    logger.ComponentLogger("Demo"),
	}
}

// Cleanup releases the model after Run completes.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	e.log.Info("scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	e.frames = []Frame{}
	e.pending = nil

	e.client = generation.NewMockClient(scenario.Setup.DefaultReply)
	if scenario.Setup.Latency > 0 {
		e.client.SetDelay(scenario.Setup.Latency)
	}

	kv := prefs.NewMemoryStore()
	_ = kv.Set(prefs.ThemeKey, scenario.Setup.Theme.String())
	sess := session.New(e.client, prefs.NewThemeStore(kv, e.log))

	cfg := config.Default()
	cfg.Notifications = false
	e.model = app.New(cfg, sess, "demo")

	e.model.Update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepQueueReply:
		e.client.QueueReply(step.Text)

	case StepQueueFailure:
		e.client.QueueError(errors.New(step.Failure))

	case StepAwaitReply:
		if e.pending == nil {
			return fmt.Errorf("no request in flight")
		}
		// Loading state first, then the resolved one
		e.captureFrame(index, e.config.ReplyDelay)
		if err := e.awaitReply(); err != nil {
			return err
		}
		e.captureFrame(index, 200*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// awaitReply runs the command returned by the submit and hands its message to
// the model the way the program would.
func (e *Executor) awaitReply() error {
	cmd := e.pending
	e.pending = nil

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if _, ok := msg.(app.GenerationDoneMsg); !ok {
			return fmt.Errorf("submit did not start a request")
		}
		result, _ := e.model.Update(msg)
		e.model = result.(*app.Model)
		return nil
	case <-time.After(e.config.ReplyTimeout):
		return fmt.Errorf("timed out waiting for reply")
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// sendKey sends a key press to the model and keeps the command of a submit
// for AwaitReply.
func (e *Executor) sendKey(key string) {
	msg := keyPress(key)
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)

	if key == keys.CtrlS && cmd != nil {
		e.pending = cmd
	}
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests to avoid exporting test helpers.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter, "\n":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlD:
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
