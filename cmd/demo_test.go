package cmd

import (
	"testing"
)

func TestGetScenario(t *testing.T) {
	origW, origH := demoWidth, demoHeight
	defer func() { demoWidth, demoHeight = origW, origH }()

	demoWidth, demoHeight = 0, 0
	s, err := getScenario("error")
	if err != nil {
		t.Fatalf("getScenario() error = %v", err)
	}
	if s.Width != 100 || s.Height != 32 {
		t.Errorf("scenario size = %dx%d, want its own 100x32", s.Width, s.Height)
	}

	if _, err := getScenario("missing"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}
