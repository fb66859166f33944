package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/replywriter/internal/mailsource"
	"github.com/zhubert/replywriter/internal/session"
)

// listenForSessionChanges waits for the next session change signal.
// The handler re-arms it, so exactly one listener is pending at a time.
func (m *Model) listenForSessionChanges() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		_, ok := <-ch
		if !ok {
			return nil
		}
		return SessionChangedMsg{}
	}
}

// waitForGeneration resolves once task has been applied to the session
func waitForGeneration(task *session.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		return GenerationDoneMsg{Outcome: task.Wait()}
	}
}

// loadMail reads path off the UI goroutine
func loadMail(path string, index int) tea.Cmd {
	return func() tea.Msg {
		msg, err := mailsource.Load(path, index)
		if err != nil {
			return MailLoadedMsg{Err: err}
		}
		return MailLoadedMsg{Text: msg.Text(), Subject: msg.Subject}
	}
}
