package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40, false)

	if ctx.TerminalWidth != 120 {
		t.Errorf("Expected TerminalWidth 120, got %d", ctx.TerminalWidth)
	}

	if ctx.TerminalHeight != 40 {
		t.Errorf("Expected TerminalHeight 40, got %d", ctx.TerminalHeight)
	}

	expectedContent := 40 - HeaderHeight - FooterHeight
	if ctx.ContentHeight != expectedContent {
		t.Errorf("Expected ContentHeight %d, got %d", expectedContent, ctx.ContentHeight)
	}

	if ctx.ComposerHeight != ComposerTotalHeight {
		t.Errorf("Expected ComposerHeight %d, got %d", ComposerTotalHeight, ctx.ComposerHeight)
	}

	expectedReply := expectedContent - ComposerTotalHeight
	if ctx.ReplyHeight != expectedReply {
		t.Errorf("Expected ReplyHeight %d, got %d", expectedReply, ctx.ReplyHeight)
	}
}

func TestViewContext_BannerShrinksReply(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40, false)
	without := ctx.ReplyHeight

	ctx.UpdateTerminalSize(120, 40, true)
	if ctx.ReplyHeight != without-BannerHeight {
		t.Errorf("Expected ReplyHeight %d with banner, got %d", without-BannerHeight, ctx.ReplyHeight)
	}
}

func TestViewContext_ClampsToMinimum(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(10, 5, true)

	if ctx.TerminalWidth != MinTerminalWidth {
		t.Errorf("Expected width clamped to %d, got %d", MinTerminalWidth, ctx.TerminalWidth)
	}
	if ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("Expected height clamped to %d, got %d", MinTerminalHeight, ctx.TerminalHeight)
	}
	if ctx.ReplyHeight < MinReplyHeight {
		t.Errorf("ReplyHeight %d below minimum %d", ctx.ReplyHeight, MinReplyHeight)
	}
}

func TestViewContext_InnerWidth(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panelWidth int
		expected   int
	}{
		{40, 40 - BorderSize},
		{80, 80 - BorderSize},
		{BorderSize, 0},
	}

	for _, tt := range tests {
		result := ctx.InnerWidth(tt.panelWidth)
		if result != tt.expected {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.panelWidth, result, tt.expected)
		}
	}
}

func TestViewContext_InnerHeight(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panelHeight int
		expected    int
	}{
		{24, 24 - BorderSize},
		{10, 10 - BorderSize},
		{BorderSize, 0},
	}

	for _, tt := range tests {
		result := ctx.InnerHeight(tt.panelHeight)
		if result != tt.expected {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.panelHeight, result, tt.expected)
		}
	}
}

func TestViewContext_Log(t *testing.T) {
	ctx := GetViewContext()

	// Should not panic when logging
	ctx.Log("layout", "width", 42)
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n, n%2 == 0)
			_ = ctx.InnerWidth(40)
			_ = ctx.InnerHeight(20)
		}(i)
	}
	wg.Wait()
}

func TestLayoutConstants(t *testing.T) {
	if HeaderHeight < 1 {
		t.Errorf("HeaderHeight should be at least 1, got %d", HeaderHeight)
	}

	if FooterHeight < 1 {
		t.Errorf("FooterHeight should be at least 1, got %d", FooterHeight)
	}

	if MinTerminalHeight < HeaderHeight+FooterHeight+ComposerTotalHeight {
		t.Errorf("MinTerminalHeight %d cannot fit the composer", MinTerminalHeight)
	}
}
