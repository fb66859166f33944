package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often expired flash messages are checked
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient message that replaces the keybindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg drives flash expiry
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after the tick interval
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	bindings      []KeyBinding
	flashMessage  *FlashMessage
	replyFocused  bool // Whether the reply panel has focus
	loading       bool // Whether a request is in flight
	hasResult     bool // Whether there is a reply to copy
	bannerVisible bool // Whether the error banner is showing
	copyNotice    bool // Whether the copy confirmation is active
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "ctrl+s", Desc: "generate"},
			{Key: "ctrl+t", Desc: "tone"},
			{Key: "ctrl+o", Desc: "open mail"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "ctrl+r", Desc: "reset"},
			{Key: "ctrl+d", Desc: "theme"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(replyFocused, loading, hasResult, bannerVisible bool) {
	f.replyFocused = replyFocused
	f.loading = loading
	f.hasResult = hasResult
	f.bannerVisible = bannerVisible
}

// SetCopyNotice toggles the copy confirmation
func (f *Footer) SetCopyNotice(active bool) {
	f.copyNotice = active
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func flashStyle(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", lipgloss.NewStyle().Foreground(ColorError)
	case FlashWarning:
		return "⚠", lipgloss.NewStyle().Foreground(ColorWarning)
	case FlashSuccess:
		return "✓", lipgloss.NewStyle().Foreground(ColorSuccess)
	default:
		return "ℹ", lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// visibleBindings filters the bindings down to the ones that apply now
func (f *Footer) visibleBindings() []KeyBinding {
	if f.loading {
		return []KeyBinding{
			{Key: "ctrl+d", Desc: "theme"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}

	var out []KeyBinding
	for _, b := range f.bindings {
		if b.Key == "ctrl+y" && !f.hasResult {
			continue
		}
		// The mail loader writes into the composer
		if b.Key == "ctrl+o" && f.replyFocused {
			continue
		}
		out = append(out, b)
	}
	if f.bannerVisible {
		out = append([]KeyBinding{{Key: "esc", Desc: "dismiss"}}, out...)
	}
	if f.replyFocused {
		out = append(out, KeyBinding{Key: "pgup/dn", Desc: "scroll"})
	}
	return out
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		icon, style := flashStyle(f.flashMessage.Type)
		return FooterStyle.Width(f.width).Render(style.Render(icon + " " + f.flashMessage.Text))
	}

	var parts []string
	if f.copyNotice {
		parts = append(parts, StatusSuccessStyle.Render("✓ "+CopyNoticeText))
	}
	for _, b := range f.visibleBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
