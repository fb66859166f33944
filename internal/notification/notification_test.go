package notification

import (
	"errors"
	"strings"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty message",
			title:   "Title",
			message: "",
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎉 Notification with emoji",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}

			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
		})
	}
}

func TestReplyReady(t *testing.T) {
	tests := []struct {
		name            string
		reply           string
		expectedMessage string
	}{
		{
			name:            "single line",
			reply:           "Thanks, see you then.",
			expectedMessage: "Reply ready: Thanks, see you then.",
		},
		{
			name:            "first line only",
			reply:           "Dear Sir,\n\nI confirm.",
			expectedMessage: "Reply ready: Dear Sir,",
		},
		{
			name:            "empty reply",
			reply:           "",
			expectedMessage: "Reply ready: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := ReplyReady(tt.reply); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != AppName {
				t.Errorf("title = %q, want %q", call.title, AppName)
			}
			if call.message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", call.message, tt.expectedMessage)
			}
		})
	}
}

func TestReplyReady_LongLineTruncated(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	ReplyReady(strings.Repeat("x", 500))

	msg := mock.calls[0].message
	if !strings.HasSuffix(msg, "…") {
		t.Errorf("expected truncated preview, got %q", msg)
	}
	if len([]rune(strings.TrimPrefix(msg, "Reply ready: "))) > previewWidth {
		t.Errorf("preview longer than %d runes: %q", previewWidth, msg)
	}
}

func TestGenerationFailed(t *testing.T) {
	mock := &mockNotification{err: errors.New("notification system unavailable")}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := GenerationFailed(); err == nil {
		t.Error("expected the notifier error to be returned")
	}
	if len(mock.calls) != 1 || mock.calls[0].message != "Reply generation failed" {
		t.Errorf("calls = %+v", mock.calls)
	}
}
