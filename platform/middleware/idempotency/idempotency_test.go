package idempotency

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aprova.app/platform/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	store  *Store
	calls  map[string]int
	status int
}

func newTestServer() *testServer {
	s := &testServer{
		store:  NewStore(100, time.Hour),
		calls:  map[string]int{},
		status: http.StatusCreated,
	}
	s.router = gin.New()
	group := s.router.Group("/v1", Middleware(s.store, nil))
	for _, path := range []string{"/notifications", "/ai/client-profile"} {
		group.POST(path, func(c *gin.Context) {
			s.calls[c.FullPath()]++
			if s.status >= http.StatusBadRequest {
				c.JSON(s.status, gin.H{"code": "internal", "message": "boom"})
				return
			}
			c.JSON(s.status, gin.H{"call": s.calls[c.FullPath()]})
		})
	}
	return s
}

func (s *testServer) do(path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(Header, key)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{Header: []string{"test-key-123"}},
			expectedKey: "test-key-123",
		},
		{
			name:        "valid_key_with_special_chars",
			headers:     http.Header{Header: []string{"test-key_123-abc.def"}},
			expectedKey: "test-key_123-abc.def",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{Header: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{Header: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := extractIdempotencyKey(tc.headers)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestHashing(t *testing.T) {
	assert.Equal(t, "", hashing(nil))
	assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6", hashing([]byte("test")))
	assert.Equal(t, hashing([]byte(`{"a":1}`)), hashing([]byte(`{"a":1}`)))
	assert.NotEqual(t, hashing([]byte(`{"a":1}`)), hashing([]byte(`{"a":2}`)))
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name     string
		entry    model.IdempotencyRecord
		bodyHash string
		conflict bool
	}{
		{name: "matching_hashes", entry: model.IdempotencyRecord{BodyHash: "abc123"}, bodyHash: "abc123"},
		{name: "empty_cached_hash_allows_any", entry: model.IdempotencyRecord{}, bodyHash: "abc123"},
		{name: "empty_new_hash_allows_any", entry: model.IdempotencyRecord{BodyHash: "abc123"}, bodyHash: ""},
		{name: "conflicting_hashes", entry: model.IdempotencyRecord{BodyHash: "abc123"}, bodyHash: "xyz789", conflict: true},
		{name: "case_sensitive_hash_comparison", entry: model.IdempotencyRecord{BodyHash: "ABC123"}, bodyHash: "abc123", conflict: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(tc.entry, tc.bodyHash)
			if tc.conflict {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), "idempotency key conflict")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestMiddleware_MissingKey(t *testing.T) {
	s := newTestServer()

	rec := s.do("/v1/notifications", "", `{"event":"content.approved"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":"invalid_argument","message":"X-Idempotency-Key header is required"}`, rec.Body.String())
	assert.Zero(t, s.calls["/v1/notifications"])
}

func TestMiddleware_ReplaysCompletedResponse(t *testing.T) {
	s := newTestServer()
	body := `{"event":"content.approved"}`

	first := s.do("/v1/notifications", "key-1", body)
	second := s.do("/v1/notifications", "key-1", body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Empty(t, first.Header().Get(ReplayedHeader))
	assert.Equal(t, "true", second.Header().Get(ReplayedHeader))
	assert.Equal(t, 1, s.calls["/v1/notifications"])
}

func TestMiddleware_BodyConflict(t *testing.T) {
	s := newTestServer()

	s.do("/v1/notifications", "key-1", `{"event":"content.approved"}`)
	rec := s.do("/v1/notifications", "key-1", `{"event":"content.rejected"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "idempotency key conflict")
	assert.Equal(t, 1, s.calls["/v1/notifications"])
}

func TestMiddleware_KeyIsScopedByRoute(t *testing.T) {
	s := newTestServer()
	body := `{"client_id":"c1"}`

	s.do("/v1/notifications", "shared", body)
	rec := s.do("/v1/ai/client-profile", "shared", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get(ReplayedHeader))
	assert.Equal(t, 1, s.calls["/v1/notifications"])
	assert.Equal(t, 1, s.calls["/v1/ai/client-profile"])
}

func TestMiddleware_FailureClearsEntry(t *testing.T) {
	s := newTestServer()
	body := `{"event":"content.approved"}`

	s.status = http.StatusInternalServerError
	failed := s.do("/v1/notifications", "key-1", body)
	assert.Equal(t, http.StatusInternalServerError, failed.Code)
	assert.Zero(t, s.store.Len())

	s.status = http.StatusCreated
	retried := s.do("/v1/notifications", "key-1", body)
	assert.Equal(t, http.StatusCreated, retried.Code)
	assert.Equal(t, 2, s.calls["/v1/notifications"])
}

func TestMiddleware_PanicClearsEntry(t *testing.T) {
	store := NewStore(100, time.Hour)
	calls := 0
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/v1/ai/monthly-plan", Middleware(store, nil), func(c *gin.Context) {
		calls++
		if calls == 1 {
			panic("completion client exploded")
		}
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/monthly-plan", strings.NewReader(`{"month":"2026-11"}`))
		req.Header.Set(Header, "plan-key")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	crashed := send()
	assert.Equal(t, http.StatusInternalServerError, crashed.Code)
	assert.Zero(t, store.Len())

	retried := send()
	assert.Equal(t, http.StatusCreated, retried.Code)
	assert.JSONEq(t, `{"call":2}`, retried.Body.String())
	assert.Equal(t, 2, calls)
}

func TestMiddleware_ConcurrentDuplicate(t *testing.T) {
	s := newTestServer()
	body := `{"event":"content.approved"}`

	_, found := s.store.begin(model.IdempotencyKey{Route: "POST /v1/notifications", Key: "key-1"}, hashing([]byte(body)))
	require.False(t, found)

	rec := s.do("/v1/notifications", "key-1", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":"aborted","message":"Request is already being processed."}`, rec.Body.String())
	assert.Zero(t, s.calls["/v1/notifications"])
}

func TestStore_ExpiresEntries(t *testing.T) {
	store := NewStore(10, 50*time.Millisecond)
	key := model.IdempotencyKey{Route: "POST /v1/notifications", Key: "key-1"}

	store.begin(key, "")
	store.complete(key, "", http.StatusCreated, []byte(`{}`))
	_, found := store.begin(key, "")
	assert.True(t, found)

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)
	_, found = store.begin(key, "")
	assert.False(t, found)
}
