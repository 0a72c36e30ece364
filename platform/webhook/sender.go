// Package webhook delivers notification envelopes to configured HTTP
// endpoints. One Send call performs exactly one POST.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"aprova.app/config"
)

const userAgent = "aprova-webhooks/1"

// Request is one outbound delivery.
type Request struct {
	URL        string
	Event      string
	DeliveryID string
	Body       []byte
}

// Response is what the destination answered. Any status code is a
// response; only transport failures are returned as errors.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
}

// OK reports whether the destination accepted the delivery.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Sender interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

// HTTPSender posts JSON bodies with an optional bearer token.
type HTTPSender struct {
	client           *http.Client
	bearerToken      string
	maxResponseBytes int64
	logger           *slog.Logger
}

func NewHTTPSender(cfg config.WebhookConfig, logger *slog.Logger) *HTTPSender {
	if logger == nil {
		logger = slog.Default()
	}
	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = 4096
	}
	return &HTTPSender{
		client:           &http.Client{Timeout: cfg.Timeout},
		bearerToken:      cfg.BearerToken,
		maxResponseBytes: maxBytes,
		logger:           logger,
	}
}

func (s *HTTPSender) Send(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if req.Event != "" {
		httpReq.Header.Set("X-Aprova-Event", req.Event)
	}
	if req.DeliveryID != "" {
		httpReq.Header.Set("X-Aprova-Delivery", req.DeliveryID)
	}
	if s.bearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.bearerToken)
	}

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn("webhook request failed", "event", req.Event, "delivery_id", req.DeliveryID, "error", err)
		return nil, fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxResponseBytes))
	if err != nil {
		s.logger.Debug("failed to read webhook response body", "delivery_id", req.DeliveryID, "error", err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Duration:   time.Since(start),
	}
	s.logger.Debug("webhook delivered", "event", req.Event, "delivery_id", req.DeliveryID, "status", resp.StatusCode, "duration", result.Duration)
	return result, nil
}
