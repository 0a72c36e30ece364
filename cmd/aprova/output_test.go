package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aprova.app/platform/model"
)

func TestResolveFormat(t *testing.T) {
	testCases := []struct {
		name          string
		flag          string
		terminal      bool
		expected      string
		expectedError bool
	}{
		{name: "auto_on_terminal", flag: "auto", terminal: true, expected: formatTable},
		{name: "auto_when_piped", flag: "auto", terminal: false, expected: formatJSON},
		{name: "empty_when_piped", flag: "", terminal: false, expected: formatJSON},
		{name: "explicit_json_on_terminal", flag: "json", terminal: true, expected: formatJSON},
		{name: "explicit_table_when_piped", flag: " TABLE ", terminal: false, expected: formatTable},
		{name: "unknown_format", flag: "yaml", terminal: true, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			format, err := resolveFormat(tc.flag, tc.terminal)
			if tc.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, format)
		})
	}
}

func TestPrinter(t *testing.T) {
	payload := map[string]any{"workflow_id": "drain-notification-queue"}
	headers := []string{"WORKFLOW", "RUN"}
	rows := [][]string{{"drain-notification-queue", "-"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		p := &printer{w: &buf, format: formatJSON}
		require.NoError(t, p.print(payload, headers, rows))
		assert.JSONEq(t, `{"workflow_id": "drain-notification-queue"}`, buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		p := &printer{w: &buf, format: formatTable}
		require.NoError(t, p.print(payload, headers, rows))
		assert.Equal(t, "WORKFLOW                  RUN\ndrain-notification-queue  -\n", buf.String())
	})

	t.Run("invalid_flag", func(t *testing.T) {
		var buf bytes.Buffer
		err := newPrinter(&buf, "xml").print(payload, headers, rows)
		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestDispatchRows(t *testing.T) {
	id := uuid.MustParse("6f1c2a8e-4d3b-4c55-9a0e-2f7d1b3c9e11")

	testCases := []struct {
		name     string
		result   *model.DispatchResult
		expected []string
	}{
		{
			name:     "sent",
			result:   &model.DispatchResult{NotificationID: id, AttemptNumber: 1, Status: model.NotificationStatusSent, StatusCode: 200},
			expected: []string{id.String(), "1", "sent", "200", "-"},
		},
		{
			name:     "transport_failure",
			result:   &model.DispatchResult{NotificationID: id, AttemptNumber: 3, Status: model.NotificationStatusError, Error: "connection refused"},
			expected: []string{id.String(), "3", "error", "-", "connection refused"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, [][]string{tc.expected}, dispatchRows(tc.result))
		})
	}
}

func TestUsageRows(t *testing.T) {
	clientID := uuid.MustParse("0b8e6f9a-1c2d-4e3f-8a9b-7c6d5e4f3a21")
	period := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	limit := int32(10)
	remaining := int64(3)

	testCases := []struct {
		name     string
		status   *model.UsageStatus
		expected []string
	}{
		{
			name: "limited",
			status: &model.UsageStatus{
				CanUse: true, CurrentUsage: 7, Limit: &limit, Remaining: &remaining,
				Percentage: 70, PeriodStart: period,
			},
			expected: []string{clientID.String(), "7", "10", "3", "70.0", "true", "2026-10"},
		},
		{
			name:     "unlimited",
			status:   &model.UsageStatus{CanUse: true, CurrentUsage: 42, IsUnlimited: true, PeriodStart: period},
			expected: []string{clientID.String(), "42", "unlimited", "unlimited", "0.0", "true", "2026-10"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, [][]string{tc.expected}, usageRows(clientID, tc.status))
		})
	}
}

func TestDrainRows(t *testing.T) {
	rows := drainRows(model.DrainResult{Processed: 4, Sent: 1, Failed: 2, Skipped: 1})
	assert.Equal(t, [][]string{{"4", "1", "2", "1"}}, rows)
}
