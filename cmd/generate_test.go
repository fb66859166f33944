package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/replywriter/internal/config"
	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/mockserver"
)

// testGenerateConfig points the config at a local mock service.
func testGenerateConfig(t *testing.T, mock mockserver.Config) *config.Config {
	t.Helper()
	ts := httptest.NewServer(mockserver.New(mock, nil))
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.Endpoint = ts.URL + mockserver.GeneratePath
	cfg.Timeout = 5 * time.Second
	cfg.PrefsPath = filepath.Join(t.TempDir(), "prefs.json")
	return cfg
}

func TestGenerateReply_FromStdin(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{})

	var out bytes.Buffer
	opts := generateOptions{tone: "formal"}
	err := generateReply(context.Background(), cfg, opts, strings.NewReader("Can we meet on Monday?"), &out)
	if err != nil {
		t.Fatalf("generateReply() error = %v", err)
	}

	want := mockserver.ComposeReply("Can we meet on Monday?", "formal")
	if !strings.Contains(out.String(), want) {
		t.Errorf("output = %q, want it to contain %q", out.String(), want)
	}
}

func TestGenerateReply_FromFile(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{})
	path := filepath.Join(t.TempDir(), "email.txt")
	if err := os.WriteFile(path, []byte("Quarterly report attached"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := generateReply(context.Background(), cfg, generateOptions{file: path}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("generateReply() error = %v", err)
	}
	if !strings.Contains(out.String(), "Quarterly report attached") {
		t.Errorf("reply should mention the topic, got %q", out.String())
	}
}

func TestGenerateReply_FromEML(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{})
	path := filepath.Join(t.TempDir(), "invite.eml")
	eml := "From: bob@example.com\r\nSubject: Team offsite\r\n\r\nPlease confirm by Friday.\r\n"
	if err := os.WriteFile(path, []byte(eml), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := generateReply(context.Background(), cfg, generateOptions{eml: path}, nil, &out)
	if err != nil {
		t.Fatalf("generateReply() error = %v", err)
	}
	if !strings.Contains(out.String(), "Team offsite") {
		t.Errorf("reply should quote the subject, got %q", out.String())
	}
}

func TestGenerateReply_BlankContent(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{})

	var out bytes.Buffer
	err := generateReply(context.Background(), cfg, generateOptions{}, strings.NewReader("   \n"), &out)
	if err == nil {
		t.Fatal("expected an error for blank content")
	}
	if err.Error() != perrors.ContentRequiredMessage {
		t.Errorf("error = %q, want %q", err.Error(), perrors.ContentRequiredMessage)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", out.String())
	}
}

func TestGenerateReply_ServiceFailure(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{FailRate: 1})

	var out bytes.Buffer
	err := generateReply(context.Background(), cfg, generateOptions{}, strings.NewReader("Hello"), &out)
	if err == nil {
		t.Fatal("expected an error when the service fails")
	}
	if err.Error() != perrors.GenerationFailedMessage {
		t.Errorf("error = %q, want %q", err.Error(), perrors.GenerationFailedMessage)
	}
}

func TestGenerateReply_JSONService(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{JSON: true})

	var out bytes.Buffer
	err := generateReply(context.Background(), cfg, generateOptions{tone: "casual"}, strings.NewReader("Lunch?"), &out)
	if err != nil {
		t.Fatalf("generateReply() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), `{"reply":`) || !strings.Contains(out.String(), `"tone":"casual"`) {
		t.Errorf("JSON replies are printed compact with sorted keys, got %q", out.String())
	}
}

func TestReadEmail_MissingFile(t *testing.T) {
	_, err := readEmail(generateOptions{file: filepath.Join(t.TempDir(), "nope.txt")}, nil)
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestReadEmail_MboxIndexOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.mbox")
	mbox := "From alice@example.com Thu Jan  1 00:00:00 2026\nSubject: One\n\nfirst\n\n"
	if err := os.WriteFile(path, []byte(mbox), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := readEmail(generateOptions{mbox: path, index: 5}, nil)
	if !perrors.Is(err, perrors.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "holds 1 message(s)") {
		t.Errorf("expected message count in error, got %q", err.Error())
	}
}

type failingClipboard struct{}

func (failingClipboard) WriteText(string) error { return errors.New("no display") }

func TestGenerateReply_CopyFailureNotReportedAsCopied(t *testing.T) {
	cfg := testGenerateConfig(t, mockserver.Config{})

	logPath := filepath.Join(t.TempDir(), "generate.log")
	logger.Reset()
	if err := logger.Init(logPath); err != nil {
		t.Fatalf("logger.Init() error = %v", err)
	}
	t.Cleanup(logger.Reset)

	prev := systemClipboard
	systemClipboard = failingClipboard{}
	t.Cleanup(func() { systemClipboard = prev })

	var out bytes.Buffer
	opts := generateOptions{copy: true}
	if err := generateReply(context.Background(), cfg, opts, strings.NewReader("Lunch on Friday?"), &out); err != nil {
		t.Fatalf("generateReply() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, "clipboard write failed") {
		t.Errorf("expected the clipboard failure in the log, got:\n%s", log)
	}
	if !strings.Contains(log, "clipboard copy requested") {
		t.Errorf("expected the copy request in the log, got:\n%s", log)
	}
	if strings.Contains(log, "copied to clipboard") {
		t.Errorf("log claims the reply was copied:\n%s", log)
	}
}
