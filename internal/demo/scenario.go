// Package demo provides infrastructure for generating demos of replywriter.
// It uses the same mock client as tests to create deterministic, reproducible
// demo recordings without calling the real generation service.
package demo

import (
	"time"

	"github.com/zhubert/replywriter/internal/prefs"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepQueueReply queues the text the mock service returns next.
	StepQueueReply
	// StepQueueFailure makes the next mock request fail.
	StepQueueFailure
	// StepAwaitReply waits for the in-flight request and delivers its result.
	StepAwaitReply
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the current frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepQueueReply
	Text string

	// For StepWait
	Duration time.Duration

	// For StepQueueFailure
	Failure string

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Theme the preferences store starts with
	Theme prefs.Mode

	// Reply returned when no reply was queued
	DefaultReply string

	// Latency of every mock request
	Latency time.Duration
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Theme:        prefs.Light,
		DefaultReply: "Thanks for reaching out. I'll get back to you shortly.",
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for _, step := range s.Steps {
		if step.Type == StepKey && step.Key == "" {
			return &ValidationError{Field: "Steps", Message: "key step without a key"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// QueueReply sets the reply text the next request receives.
func QueueReply(text string) Step {
	return Step{
		Type: StepQueueReply,
		Text: text,
	}
}

// QueueFailure makes the next request fail with the given cause. The cause is
// only logged; the screen shows the generic failure message.
func QueueFailure(cause string) Step {
	return Step{
		Type:    StepQueueFailure,
		Failure: cause,
	}
}

// AwaitReply waits for the submitted request to resolve.
func AwaitReply() Step {
	return Step{
		Type: StepAwaitReply,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
