package platform

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestInBackground(t *testing.T) {
	testCases := []struct {
		name            string
		timeout         time.Duration
		fnErr           error
		expectedLog     string
		expectedTimeout time.Duration
	}{
		{
			name:            "failure_is_logged_on_service_logger",
			timeout:         2 * time.Second,
			fnErr:           errors.New("temporal unavailable"),
			expectedLog:     `"msg":"background operation failed"`,
			expectedTimeout: 2 * time.Second,
		},
		{
			name:            "success_is_logged_at_debug",
			expectedLog:     `"msg":"background operation finished"`,
			expectedTimeout: defaultBackgroundTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &lockedBuffer{}
			logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
			s := NewService(nil, nil, nil, nil, ServiceConfig{BackgroundTimeout: tc.timeout}, logger)

			deadlines := make(chan time.Duration, 1)
			start := time.Now()
			s.background("start delivery workflow", func(ctx context.Context) error {
				deadline, _ := ctx.Deadline()
				deadlines <- deadline.Sub(start)
				return tc.fnErr
			})

			select {
			case remaining := <-deadlines:
				assert.LessOrEqual(t, remaining, tc.expectedTimeout+time.Second)
				assert.Greater(t, remaining, tc.expectedTimeout-time.Second)
			case <-time.After(time.Second):
				t.Fatal("background operation did not run")
			}

			assert.Eventually(t, func() bool {
				logged := out.String()
				return strings.Contains(logged, tc.expectedLog) &&
					strings.Contains(logged, `"op":"start delivery workflow"`)
			}, time.Second, 10*time.Millisecond)
		})
	}
}
