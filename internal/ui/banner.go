package ui

// Banner is the dismissible error box shown between the composer and the reply
type Banner struct {
	width     int
	message   string
	dismissed bool
}

// NewBanner creates a hidden banner
func NewBanner() *Banner {
	return &Banner{}
}

// SetWidth sets the banner width including borders
func (b *Banner) SetWidth(width int) {
	b.width = width
}

// Show displays message. A new message undoes an earlier dismissal.
func (b *Banner) Show(message string) {
	b.message = message
	b.dismissed = false
}

// Dismiss hides the banner until the next Show
func (b *Banner) Dismiss() {
	b.dismissed = true
}

// Hide clears the banner entirely
func (b *Banner) Hide() {
	b.message = ""
	b.dismissed = false
}

// Visible reports whether the banner takes up space
func (b *Banner) Visible() bool {
	return b.message != "" && !b.dismissed
}

// Message returns the current message, shown or not
func (b *Banner) Message() string {
	return b.message
}

// View renders the banner, or "" when hidden
func (b *Banner) View() string {
	if !b.Visible() {
		return ""
	}
	return BannerStyle.Width(b.width).Render("✕ " + b.message + "  " + FooterDescStyle.Render("(esc to dismiss)"))
}
