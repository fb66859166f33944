package generation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perrors "github.com/zhubert/replywriter/internal/errors"
)

func TestHTTPClient_Generate(t *testing.T) {
	var got Request
	var headers http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/email/generate" {
			t.Errorf("expected /api/email/generate, got %s", r.URL.Path)
		}
		headers = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Thanks, see you Friday."))
	}))
	defer server.Close()

	c := NewHTTPClientWithClient(server.Client(), server.URL+"/api/email/generate")
	resp, err := c.Generate(context.Background(), Request{EmailContent: "Lunch on Friday?", Tone: "friendly"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got.EmailContent != "Lunch on Friday?" || got.Tone != "friendly" {
		t.Errorf("server received %+v", got)
	}
	if resp.Text() != "Thanks, see you Friday." {
		t.Errorf("Text() = %q", resp.Text())
	}
	if resp.ContentType != "text/plain" {
		t.Errorf("ContentType = %q", resp.ContentType)
	}
	if ct := headers.Get("Content-Type"); ct != "application/json" {
		t.Errorf("request Content-Type = %q", ct)
	}
	if headers.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if ua := headers.Get("User-Agent"); !strings.HasPrefix(ua, "replywriter/") {
		t.Errorf("User-Agent = %q", ua)
	}
}

func TestHTTPClient_WireFormat(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Errorf("body is not JSON: %s", body)
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := NewHTTPClientWithClient(server.Client(), server.URL)
	if _, err := c.Generate(context.Background(), Request{EmailContent: "hi"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(raw) != 2 {
		t.Errorf("expected exactly two fields, got %v", raw)
	}
	if raw["emailContent"] != "hi" {
		t.Errorf("emailContent = %v", raw["emailContent"])
	}
	// An empty tone is still sent.
	if tone, ok := raw["tone"]; !ok || tone != "" {
		t.Errorf("tone = %v (present %v), want empty string", tone, ok)
	}
}

func TestHTTPClient_JSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tone":"formal","reply":"Dear Sir"}`))
	}))
	defer server.Close()

	c := NewHTTPClientWithClient(server.Client(), server.URL)
	resp, err := c.Generate(context.Background(), Request{EmailContent: "x"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := `{"reply":"Dear Sir","tone":"formal"}`
	if resp.Text() != want {
		t.Errorf("Text() = %q, want %q", resp.Text(), want)
	}
}

func TestHTTPClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"emailContent must not be blank"}`))
			},
		},
		{
			name: "redirect loop",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, r.URL.String(), http.StatusTemporaryRedirect)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewHTTPClientWithClient(server.Client(), server.URL)
			_, err := c.Generate(context.Background(), Request{EmailContent: "x"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !perrors.Is(err, perrors.KindGeneration) {
				t.Errorf("expected KindGeneration, got %v", perrors.GetKind(err))
			}
		})
	}
}

func TestHTTPClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewHTTPClientWithClient(&http.Client{Timeout: time.Second}, url)
	_, err := c.Generate(context.Background(), Request{EmailContent: "x"})
	if !perrors.Is(err, perrors.KindGeneration) {
		t.Errorf("expected KindGeneration, got %v", err)
	}
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := NewHTTPClientWithClient(&http.Client{Timeout: 50 * time.Millisecond}, server.URL)
	_, err := c.Generate(context.Background(), Request{EmailContent: "x"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !perrors.Is(err, perrors.KindGeneration) {
		t.Errorf("expected KindGeneration, got %v", perrors.GetKind(err))
	}
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	c := NewHTTPClient("", 0, "1.2.3")
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("Endpoint() = %q, want default", c.Endpoint())
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, DefaultTimeout)
	}
	if c.userAgent != "replywriter/1.2.3" {
		t.Errorf("userAgent = %q", c.userAgent)
	}
}
