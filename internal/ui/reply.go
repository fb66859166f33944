package ui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const replyPlaceholder = "Your generated reply will appear here."

// Reply is the scrollable panel that shows the generated reply
type Reply struct {
	width    int
	height   int
	viewport viewport.Model
	focused  bool
	loading  bool
	text     string
}

// NewReply creates an empty reply panel
func NewReply() *Reply {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	r := &Reply{viewport: vp}
	r.updateContent()
	return r
}

// SetSize sets the panel dimensions including borders
func (r *Reply) SetSize(width, height int) {
	r.width = width
	r.height = height

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width) - PanelPaddingWidth
	innerHeight := ctx.InnerHeight(height) - TitleHeight
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}
	r.viewport.SetWidth(innerWidth)
	r.viewport.SetHeight(innerHeight)
	r.updateContent()
}

// SetFocused sets the focus state
func (r *Reply) SetFocused(focused bool) {
	r.focused = focused
}

// IsFocused returns the focus state
func (r *Reply) IsFocused() bool {
	return r.focused
}

// SetLoading shows the in-flight placeholder
func (r *Reply) SetLoading(loading bool) {
	if r.loading == loading {
		return
	}
	r.loading = loading
	r.updateContent()
}

// SetText replaces the reply and scrolls to the top
func (r *Reply) SetText(text string) {
	if r.text == text {
		return
	}
	r.text = text
	r.updateContent()
	r.viewport.GotoTop()
}

// Text returns the reply being shown
func (r *Reply) Text() string {
	return r.text
}

// RefreshStyles re-renders with the current theme
func (r *Reply) RefreshStyles() {
	r.updateContent()
}

// wrapWidth returns the column count replies are wrapped to
func (r *Reply) wrapWidth() int {
	if w := r.viewport.Width(); w > 0 {
		return w
	}
	return DefaultWrapWidth
}

func (r *Reply) updateContent() {
	var content string
	switch {
	case r.loading:
		content = StatusLoadingStyle.Render(SubmitLoadingText)
	case r.text == "":
		content = ReplyPlaceholderStyle.Render(replyPlaceholder)
	default:
		content = ReplyTextStyle.Render(ansi.Wrap(r.text, r.wrapWidth(), ""))
	}
	r.viewport.SetContent(content)
}

// Update scrolls the viewport. Keys only scroll while focused.
func (r *Reply) Update(msg tea.Msg) (*Reply, tea.Cmd) {
	if _, isKey := msg.(tea.KeyPressMsg); isKey && !r.focused {
		return r, nil
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View renders the reply panel
func (r *Reply) View() string {
	panelStyle := PanelStyle
	if r.focused {
		panelStyle = PanelFocusedStyle
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("Generated reply"),
		r.viewport.View(),
	)
	return panelStyle.Width(r.width).Height(r.height).Padding(0, 1).Render(body)
}
