package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/logger"
)

const (
	// DefaultEndpoint is the hosted generation service.
	DefaultEndpoint = "https://email-writer-sb-latest.onrender.com/api/email/generate"
	// DefaultTimeout bounds a single request, including reading the body.
	DefaultTimeout = 60 * time.Second
)

// HTTPClient implements Client against the generation service's JSON API.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	log        *slog.Logger
}

// NewHTTPClient creates a client for endpoint. An empty endpoint selects
// DefaultEndpoint, a non-positive timeout selects DefaultTimeout.
func NewHTTPClient(endpoint string, timeout time.Duration, version string) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := NewHTTPClientWithClient(&http.Client{Timeout: timeout}, endpoint)
	if version != "" {
		c.userAgent = "replywriter/" + version
	}
	return c
}

// NewHTTPClientWithClient creates a client with a custom HTTP client (for testing).
func NewHTTPClientWithClient(client *http.Client, endpoint string) *HTTPClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPClient{
		httpClient: client,
		endpoint:   endpoint,
		userAgent:  "replywriter/dev",
		log:        logger.ComponentLogger("Generation"),
	}
}

// Endpoint returns the URL requests are posted to.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Generate posts req and returns the raw response. Every failure, whatever
// its cause, is a KindGeneration error wrapping that cause.
func (c *HTTPClient) Generate(ctx context.Context, req Request) (Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, perrors.GenerationFailed(fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, perrors.GenerationFailed(fmt.Errorf("create request: %w", err))
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json, text/plain")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)

	log := c.log.With("requestID", requestID)
	log.Debug("sending generation request", "endpoint", c.endpoint, "tone", req.Tone, "contentLen", len(req.EmailContent))
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("generation request failed", "error", err, "timeout", isTimeout(err), "elapsed", time.Since(start))
		return Response{}, perrors.GenerationFailed(fmt.Errorf("post %s: %w", c.endpoint, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("reading generation response failed", "error", err, "status", resp.StatusCode)
		return Response{}, perrors.GenerationFailed(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("generation service returned error status", "status", resp.StatusCode, "elapsed", time.Since(start))
		return Response{}, perrors.GenerationFailed(fmt.Errorf("generation service returned status %d", resp.StatusCode))
	}

	log.Info("generation request completed", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	return Response{Body: body, ContentType: resp.Header.Get("Content-Type")}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
