package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/replywriter/internal/session"
	"github.com/zhubert/replywriter/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	sections := []string{m.header.View(), m.composer.View()}
	if m.banner.Visible() {
		sections = append(sections, m.banner.View())
	}
	sections = append(sections, m.reply.View(), m.footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.focus == FocusReply,
		m.snap.Phase == session.Loading,
		m.snap.HasResult(),
		m.banner.Visible(),
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, m.banner.Visible())

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.composer.SetWidth(ctx.TerminalWidth)
	m.banner.SetWidth(ctx.TerminalWidth)
	m.reply.SetSize(ctx.TerminalWidth, ctx.ReplyHeight)
}
