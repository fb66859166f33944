package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, assigned from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorPaper       color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Composer styles
var (
	ToneLabelStyle            lipgloss.Style
	ToneValueStyle            lipgloss.Style
	SubmitButtonStyle         lipgloss.Style
	SubmitButtonDisabledStyle lipgloss.Style
	HelperErrorStyle          lipgloss.Style
)

// Reply and banner styles
var (
	ReplyTextStyle        lipgloss.Style
	ReplyPlaceholderStyle lipgloss.Style
	BannerStyle           lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style
)
