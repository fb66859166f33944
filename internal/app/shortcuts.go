package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/keys"
	"github.com/zhubert/replywriter/internal/session"
	"github.com/zhubert/replywriter/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+s")
	Description string                              // Human-readable description
	Category    string                              // Section for grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts
const (
	CategoryCompose = "Compose"
	CategoryReply   = "Reply"
	CategoryGeneral = "General"
)

// ShortcutRegistry is the central registry of all keyboard shortcuts.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.CtrlS,
		Description: "Generate a reply",
		Category:    CategoryCompose,
		Handler:     shortcutSubmit,
	},
	{
		Key:         keys.CtrlT,
		Description: "Choose the reply tone",
		Category:    CategoryCompose,
		Handler:     shortcutTone,
	},
	{
		Key:         keys.CtrlO,
		Description: "Load an email from an .eml or .mbox file",
		Category:    CategoryCompose,
		Handler:     shortcutOpenMail,
		Condition:   func(m *Model) bool { return m.focus == FocusComposer },
	},
	{
		Key:         keys.CtrlR,
		Description: "Clear content, tone and reply",
		Category:    CategoryCompose,
		Handler:     shortcutReset,
	},
	{
		Key:         keys.CtrlY,
		Description: "Copy the reply to the clipboard",
		Category:    CategoryReply,
		Handler:     shortcutCopy,
	},
	{
		Key:         keys.CtrlD,
		Description: "Toggle light/dark theme",
		Category:    CategoryGeneral,
		Handler:     shortcutTheme,
	},
	{
		Key:         keys.Tab,
		Description: "Switch between composer and reply",
		Category:    CategoryGeneral,
		Handler:     shortcutToggleFocus,
	},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			m.log.Debug("shortcut guard failed", "key", key)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func shortcutSubmit(m *Model) (tea.Model, tea.Cmd) {
	m.pushComposerContent()

	task, err := m.session.Submit(context.Background())
	switch {
	case errors.Is(err, session.ErrRequestInFlight):
		return m, nil
	case perrors.Is(err, perrors.KindValidation):
		m.syncFromSession()
		return m, nil
	case err != nil:
		m.log.Error("submit failed", "error", err)
		m.syncFromSession()
		return m, m.flashForError(err, "Could not start the request")
	}

	m.syncFromSession()
	return m, waitForGeneration(task)
}

func shortcutTone(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewToneState(m.snap.Tone))
	return m, nil
}

func shortcutOpenMail(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewLoadMailState(""))
	return m, nil
}

func shortcutReset(m *Model) (tea.Model, tea.Cmd) {
	if err := m.session.Reset(); err != nil {
		return m, m.ShowFlashWarning("Wait for the current reply to finish")
	}
	m.syncFromSession()
	return m, nil
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	if !m.session.CopyResult() {
		return m, m.ShowFlashInfo("Nothing to copy yet")
	}
	m.syncFromSession()
	return m, nil
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	_, err := m.session.ToggleTheme()
	m.syncFromSession()
	if err != nil {
		return m, m.ShowFlashWarning("Theme changed but could not be saved")
	}
	return m, nil
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}
