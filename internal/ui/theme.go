package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/zhubert/replywriter/internal/prefs"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for the tone row and keys)
	Secondary string

	// Background colors
	Bg    string // Main background
	Paper string // Panel surfaces

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// BuiltinThemes maps each persisted theme mode to its palette.
var BuiltinThemes = map[prefs.Mode]Theme{
	prefs.Light: {
		Name:        "Light",
		Primary:     "#1976D2",
		Secondary:   "#F50057",
		Bg:          "#F5F5F5",
		Paper:       "#FFFFFF",
		Text:        "#212121",
		TextMuted:   "#616161",
		TextInverse: "#FFFFFF",
		Warning:     "#ED6C02",
		Error:       "#D32F2F",
		Info:        "#0288D1",
		Success:     "#2E7D32",
		Border:      "#BDBDBD",
	},
	prefs.Dark: {
		Name:        "Dark",
		Primary:     "#81D4FA",
		Secondary:   "#FF9100",
		Bg:          "#121212",
		Paper:       "#1E1E1E",
		Text:        "#FAFAFA",
		TextMuted:   "#B0B0B0",
		TextInverse: "#121212",
		Warning:     "#FFA726",
		Error:       "#F44336",
		Info:        "#29B6F6",
		Success:     "#66BB6A",
		Border:      "#424242",
	},
}

// GetTheme returns the palette for a mode, defaulting to Light
func GetTheme(mode prefs.Mode) Theme {
	if theme, ok := BuiltinThemes[mode]; ok {
		return theme
	}
	return BuiltinThemes[prefs.Light]
}

var (
	currentMode  = prefs.Light
	currentTheme = BuiltinThemes[prefs.Light]
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentMode returns the mode of the active theme
func CurrentMode() prefs.Mode {
	return currentMode
}

// SetTheme switches the active palette and regenerates all styles.
// It is a no-op when mode is already active.
func SetTheme(mode prefs.Mode) {
	if mode == currentMode {
		return
	}
	currentMode = mode
	currentTheme = GetTheme(mode)
	regenerateStyles()
}

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorPaper = lipgloss.Color(t.Paper)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Panel styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	// Composer styles
	ToneLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ToneValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	SubmitButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	SubmitButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorBorder).
		Padding(0, 1)

	HelperErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	// Reply styles
	ReplyTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ReplyPlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	// Banner styles
	BannerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Foreground(ColorError).
		Padding(0, 1)

	// Modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Status styles
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
}
