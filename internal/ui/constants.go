// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelPaddingWidth is the horizontal padding inside panels (Padding(0, 1))
	PanelPaddingWidth = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// TextareaHeight is the number of lines for the email content textarea
	TextareaHeight = 8

	// ToneRowHeight is the tone/submit row under the textarea
	ToneRowHeight = 1

	// HelperTextHeight is reserved under the textarea for the validation hint
	HelperTextHeight = 1

	// ComposerTotalHeight is the composer panel height including borders
	ComposerTotalHeight = TitleHeight + TextareaHeight + HelperTextHeight + ToneRowHeight + BorderSize

	// BannerHeight is the error banner height including borders
	BannerHeight = 1 + BorderSize

	// MinReplyHeight keeps the reply panel usable on short terminals
	MinReplyHeight = 3

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 1024
)

// Labels shown by the composer
const (
	SubmitLabel       = "Generate Reply"
	SubmitLoadingText = "Generating..."
	ContentHelperText = "Email content is required"
	CopyNoticeText    = "Copied to clipboard!"
)
