// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/replywriter/internal/logger"
)

var (
	initMu      sync.Mutex
	initialized bool
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; a failed attempt is retried on the
// next call.
func Init() error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Debug("Clipboard: Initialized successfully")
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText returns the clipboard's text, or "" when it holds none.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}

	data := clipboard.Read(clipboard.FmtText)
	logger.Debug("Clipboard: Read %d bytes of text", len(data))
	return string(data), nil
}

// System is the process clipboard as a value, for injection into code that
// takes a writer.
type System struct{}

// WriteText implements session.ClipboardWriter.
func (System) WriteText(text string) error {
	return WriteText(text)
}
