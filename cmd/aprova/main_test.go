package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := rootCmd()

	for _, path := range [][]string{
		{"serve"}, {"worker"}, {"migrate"}, {"dispatch"}, {"drain"}, {"usage"}, {"webhook", "set"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	for _, flag := range []string{"config", "log-level", "output"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	testCases := []struct {
		name          string
		args          []string
		expectedError string
	}{
		{name: "dispatch_without_id", args: []string{"dispatch"}, expectedError: "accepts 1 arg(s)"},
		{name: "dispatch_bad_id", args: []string{"dispatch", "not-a-uuid"}, expectedError: "invalid notification id"},
		{name: "usage_bad_id", args: []string{"usage", "42"}, expectedError: "invalid client id"},
		{name: "webhook_unknown_category", args: []string{"webhook", "set", "billing", "https://hooks.example.com"}, expectedError: "Category"},
		{name: "drain_limit_too_large", args: []string{"drain", "--limit", "500"}, expectedError: "limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := rootCmd()
			root.SetArgs(tc.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLevel(tc.input))
		})
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json")
	logger.Info("dropped")
	logger.Warn("kept", "notification_id", "abc")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"notification_id":"abc"`)
}

func TestWebhookRequest(t *testing.T) {
	agencyID := uuid.MustParse("9d5e3c1b-7a2f-4b6e-8c0d-1e2f3a4b5c6d")

	testCases := []struct {
		name           string
		category       string
		url            string
		agency         string
		expectedAgency *uuid.UUID
		expectedCode   errs.ErrCode
		expectedError  string
	}{
		{name: "global_client_webhook", category: "client", url: "https://hooks.example.com/client"},
		{name: "agency_internal_webhook", category: "internal", url: "https://hooks.example.com/ops", agency: agencyID.String(), expectedAgency: &agencyID},
		{name: "clear_destination", category: "two_factor", url: ""},
		{name: "bad_agency", category: "client", url: "https://hooks.example.com", agency: "acme", expectedError: "invalid agency id"},
		{name: "bad_url", category: "client", url: "not a url", expectedCode: errs.InvalidArgument},
		{name: "unknown_category", category: "billing", url: "https://hooks.example.com", expectedCode: errs.InvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := webhookRequest(tc.category, tc.url, tc.agency)
			switch {
			case tc.expectedError != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			case tc.expectedCode != errs.OK:
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.Category(tc.category), req.Category)
			assert.Equal(t, tc.url, req.URL)
			assert.Equal(t, tc.expectedAgency, req.AgencyID)
		})
	}
}
