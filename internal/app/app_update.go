package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/replywriter/internal/keys"
	"github.com/zhubert/replywriter/internal/notification"
	"github.com/zhubert/replywriter/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("window focused")

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("window blurred")

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case SessionChangedMsg:
		m.syncFromSession()
		return m, m.listenForSessionChanges()

	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)

	case MailLoadedMsg:
		return m.handleMailLoaded(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()
	}

	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	cmds = append(cmds, cmd)
	m.pushComposerContent()

	m.reply, cmd = m.reply.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// pushComposerContent hands edited text to the session
func (m *Model) pushComposerContent() {
	if text := m.composer.Value(); text != m.snap.Content {
		m.session.UpdateContent(text)
		m.syncFromSession()
	}
}

// handleKeyPress returns a nil model when the key should reach the focused panel
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if key == keys.Escape {
		if m.banner.Visible() {
			m.banner.Dismiss()
			m.relayoutBanner()
		}
		return m, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	return nil, nil
}

// handleModalKey handles Enter and Escape for the open modal; other keys go
// to the modal's form
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.confirmModal()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) confirmModal() (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *ui.ToneState:
		m.session.UpdateTone(s.Selected())
		m.modal.Hide()
		m.syncFromSession()
		return m, nil

	case *ui.LoadMailState:
		if err := s.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		index, _ := s.Index()
		m.log.Info("loading mail", "path", s.Path(), "index", index)
		return m, loadMail(s.Path(), index)
	}

	m.modal.Hide()
	return m, nil
}

func (m *Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	m.syncFromSession()

	if msg.Outcome.Err != nil {
		// A new failure re-raises a banner the user dismissed earlier
		if m.snap.ShowBanner() {
			m.banner.Show(m.snap.ErrorMessage)
			m.relayoutBanner()
		}
		if m.shouldNotify() {
			go notification.GenerationFailed()
		}
		return m, nil
	}

	if m.shouldNotify() {
		go notification.ReplyReady(msg.Outcome.Result)
	}
	return m, nil
}

// shouldNotify reports whether a desktop notification is wanted: the user
// enabled them and is looking at another window
func (m *Model) shouldNotify() bool {
	return m.config != nil && m.config.Notifications && !m.windowFocused
}

func (m *Model) handleMailLoaded(msg MailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("failed to load mail", "error", msg.Err)
		if _, open := m.modal.State.(*ui.LoadMailState); open {
			m.modal.SetError(msg.Err.Error())
			return m, nil
		}
		return m, m.flashForError(msg.Err, "Could not load email")
	}

	if _, open := m.modal.State.(*ui.LoadMailState); open {
		m.modal.Hide()
	}
	m.session.UpdateContent(msg.Text)
	m.syncFromSession()

	if msg.Subject != "" {
		return m, m.ShowFlashSuccess("Loaded: " + msg.Subject)
	}
	return m, m.ShowFlashSuccess("Email loaded")
}
