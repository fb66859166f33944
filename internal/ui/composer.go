package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/replywriter/internal/generation"
	"github.com/zhubert/replywriter/internal/keys"
)

// Composer is the email content panel: a textarea, the validation hint, and
// the tone/submit row.
type Composer struct {
	width      int
	input      textarea.Model
	focused    bool
	tone       string
	loading    bool
	showHelper bool
}

// NewComposer creates an empty composer
func NewComposer() *Composer {
	ti := textarea.New()
	ti.Placeholder = "Paste the email you received..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	applyTextareaStyles(&ti)

	return &Composer{input: ti}
}

// applyTextareaStyles drops the textarea's own background so the panel
// surface shows through.
func applyTextareaStyles(ta *textarea.Model) {
	styles := ta.Styles()

	baseStyle := lipgloss.NewStyle()
	textStyle := lipgloss.NewStyle().Foreground(ColorText)
	placeholderStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	styles.Focused.Base = baseStyle
	styles.Focused.Text = textStyle
	styles.Focused.Placeholder = placeholderStyle
	styles.Focused.CursorLine = textStyle
	styles.Focused.Prompt = textStyle

	styles.Blurred.Base = baseStyle
	styles.Blurred.Text = textStyle
	styles.Blurred.Placeholder = placeholderStyle
	styles.Blurred.CursorLine = textStyle
	styles.Blurred.Prompt = textStyle

	ta.SetStyles(styles)
}

// RefreshStyles re-applies theme colors after a theme change
func (c *Composer) RefreshStyles() {
	applyTextareaStyles(&c.input)
}

// SetWidth sets the composer panel width
func (c *Composer) SetWidth(width int) {
	c.width = width
	inner := GetViewContext().InnerWidth(width) - PanelPaddingWidth
	if inner < 1 {
		inner = 1
	}
	c.input.SetWidth(inner)
}

// SetFocused sets the focus state
func (c *Composer) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Composer) IsFocused() bool {
	return c.focused
}

// Value returns the textarea contents
func (c *Composer) Value() string {
	return c.input.Value()
}

// SetValue replaces the textarea contents. The cursor moves to the end.
func (c *Composer) SetValue(text string) {
	if c.input.Value() == text {
		return
	}
	c.input.SetValue(text)
}

// SetTone sets the tone shown in the tone row
func (c *Composer) SetTone(tone string) {
	c.tone = tone
}

// SetLoading switches the submit label to its in-flight text
func (c *Composer) SetLoading(loading bool) {
	c.loading = loading
}

// SetHelperError shows or hides the "content required" hint
func (c *Composer) SetHelperError(show bool) {
	c.showHelper = show
}

// Update forwards input to the textarea while focused
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Tab {
		return c, nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Composer) toneRow() string {
	tone := ToneLabelStyle.Render("Tone: ") + ToneValueStyle.Render(generation.ToneLabel(c.tone))

	var button string
	if c.loading {
		button = SubmitButtonDisabledStyle.Render(SubmitLoadingText)
	} else {
		button = SubmitButtonStyle.Render(SubmitLabel)
	}

	inner := GetViewContext().InnerWidth(c.width) - PanelPaddingWidth
	gap := inner - lipgloss.Width(tone) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	return tone + strings.Repeat(" ", gap) + button
}

// View renders the composer panel
func (c *Composer) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	helper := ""
	if c.showHelper {
		helper = HelperErrorStyle.Render(ContentHelperText)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("Email content"),
		c.input.View(),
		helper,
		c.toneRow(),
	)
	return panelStyle.Width(c.width).Padding(0, 1).Render(body)
}
