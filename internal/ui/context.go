package ui

import (
	"sync"

	"github.com/zhubert/replywriter/internal/logger"
)

// Minimum terminal dimensions the layout is computed for
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 20
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight   int
	FooterHeight   int
	ContentHeight  int
	ComposerHeight int
	ReplyHeight    int

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using slog structured logging.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.ComponentLogger("ui").Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// bannerVisible reserves room for the error banner between the panels.
func (v *ViewContext) UpdateTerminalSize(width, height int, bannerVisible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight
	v.ComposerHeight = ComposerTotalHeight

	v.ReplyHeight = v.ContentHeight - v.ComposerHeight
	if bannerVisible {
		v.ReplyHeight -= BannerHeight
	}
	if v.ReplyHeight < MinReplyHeight {
		v.ReplyHeight = MinReplyHeight
	}

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"composerHeight", v.ComposerHeight,
		"replyHeight", v.ReplyHeight,
		"banner", bannerVisible,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
