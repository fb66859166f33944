package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/replywriter/internal/prefs"
)

// Title is shown at the left of the header
const Title = "replywriter"

// Header represents the top header bar
type Header struct {
	width int
	mode  prefs.Mode
	busy  bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{mode: prefs.Light}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetMode sets the theme indicator
func (h *Header) SetMode(mode prefs.Mode) {
	h.mode = mode
}

// SetBusy marks a request in flight
func (h *Header) SetBusy(busy bool) {
	h.busy = busy
}

// themeIndicator returns the right-hand text for the current mode
func (h *Header) themeIndicator() string {
	if h.mode == prefs.Dark {
		return "☾ dark"
	}
	return "☀ light"
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + Title
	if h.busy {
		titleText += " · generating"
	}
	rightText := h.themeIndicator() + " "

	paddingLen := h.width - lipgloss.Width(titleText) - lipgloss.Width(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(fullContent))-len([]rune(rightText)))
}

// parseHexColor parses a hex color string (e.g., "#1976D2") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Runes from mutedFrom onward use the muted text color.
func (h *Header) renderGradient(content string, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.TextInverse)
	mutedColor := lipgloss.Color(theme.TextMuted)
	titleLen := len([]rune(Title)) + 1

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		if i >= mutedFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
