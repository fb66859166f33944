package app

import (
	tea "charm.land/bubbletea/v2"
	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/ui"
)

// ShowFlash puts text in the footer and starts the tick that clears it.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	m.log.Debug("flash", "type", flashType, "text", text)
	return ui.FlashTick()
}

func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// flashForError picks the footer text for err by its kind. Only kinds a user
// can act on get their own wording; the rest fall back to fallback.
func (m *Model) flashForError(err error, fallback string) tea.Cmd {
	switch perrors.GetKind(err) {
	case perrors.KindNotFound:
		return m.ShowFlashWarning("No message at that position")
	case perrors.KindIO:
		return m.ShowFlashError("Could not read the file")
	case perrors.KindInvalid:
		return m.ShowFlashError("Not a readable email")
	}
	return m.ShowFlashError(fallback)
}
