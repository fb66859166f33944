package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/replywriter/internal/config"
	"github.com/zhubert/replywriter/internal/generation"
	"github.com/zhubert/replywriter/internal/keys"
	"github.com/zhubert/replywriter/internal/prefs"
	"github.com/zhubert/replywriter/internal/session"
	"github.com/zhubert/replywriter/internal/ui"
)

// testConfig creates a config for testing with notifications off.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Notifications = false
	return cfg
}

// testModel creates a test Model backed by a mock client and an in-memory
// theme store.
func testModel(t *testing.T, client generation.Client) (*Model, *prefs.MemoryStore) {
	t.Helper()
	kv := prefs.NewMemoryStore()
	sess := session.New(client, prefs.NewThemeStore(kv, nil))
	m := New(testConfig(), sess, "0.0.0-test")
	t.Cleanup(func() {
		m.Close()
		ui.SetTheme(prefs.Light)
	})
	return m, kv
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, client generation.Client, width, height int) *Model {
	t.Helper()
	m, _ := testModel(t, client)
	return setSize(m, width, height)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "ctrl+s"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
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
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command as well.
func sendKeyCmd(m *Model, key string) (*Model, tea.Cmd) {
	result, cmd := m.Update(keyPress(key))
	return result.(*Model), cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// submit presses ctrl+s, waits for the request, and feeds the result back
// into the model the way the Bubble Tea runtime would.
func submit(t *testing.T, m *Model) *Model {
	t.Helper()
	m, cmd := sendKeyCmd(m, keys.CtrlS)
	if cmd == nil {
		t.Fatal("expected a command from ctrl+s")
	}
	return runCmd(t, m, cmd)
}

// runCmd executes cmd with a timeout and delivers its message to the model.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		result, _ := m.Update(msg)
		return result.(*Model)
	case <-time.After(5 * time.Second):
		t.Fatal("command did not complete")
		return m
	}
}
