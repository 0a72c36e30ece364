package idempotency

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

const Header = "X-Idempotency-Key"

// ReplayedHeader marks a response served from the idempotency store.
const ReplayedHeader = "Idempotent-Replayed"

// Middleware makes a route safe to retry. The first request for a key runs
// the handler and stores a 2xx response; later requests with the same key
// and body get that response back without running the handler again.
func Middleware(store *Store, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		idempotencyKey, err := extractIdempotencyKey(c.Request.Header)
		if err != nil {
			abort(c, err)
			return
		}

		body, readErr := c.GetRawData()
		if readErr != nil {
			abort(c, &errs.Error{Code: errs.InvalidArgument, Message: "failed to read request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		bodyHash := hashing(body)

		cacheKey := model.IdempotencyKey{
			Route: c.Request.Method + " " + c.FullPath(),
			Key:   idempotencyKey,
		}

		entry, found := store.begin(cacheKey, bodyHash)
		if found {
			handleExistingEntry(c, entry, bodyHash, idempotencyKey, logger)
			return
		}

		// Anything short of a stored 2xx, a panic included, releases the key
		// so the client can retry.
		stored := false
		defer func() {
			if !stored {
				store.clear(cacheKey)
			}
		}()

		recorder := &responseRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		status := recorder.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			store.complete(cacheKey, bodyHash, status, recorder.body.Bytes())
			stored = true
			logger.Debug("request completed and response cached", "key", idempotencyKey)
		}
	}
}

// extractIdempotencyKey returns the first non-blank value of the header.
func extractIdempotencyKey(header http.Header) (string, *errs.Error) {
	key := strings.TrimSpace(header.Get(Header))
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

func handleExistingEntry(c *gin.Context, entry model.IdempotencyRecord, bodyHash, idempotencyKey string, logger *slog.Logger) {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		abort(c, err)
		return
	}

	switch entry.State {
	case model.IdempotencyProcessing:
		logger.Info("concurrent request detected", "key", idempotencyKey)
		abort(c, &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."})
	case model.IdempotencyCompleted:
		logger.Info("returning cached response", "key", idempotencyKey)
		c.Header(ReplayedHeader, "true")
		c.Data(entry.StatusCode, "application/json; charset=utf-8", entry.Body)
		c.Abort()
	default:
		logger.Warn("unknown idempotency record state", "key", idempotencyKey, "state", entry.State)
		c.Next()
	}
}

// validateBodyHash rejects reuse of a key with a different request body.
func validateBodyHash(entry model.IdempotencyRecord, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.BodyHash != "" && bodyHash != entry.BodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func abort(c *gin.Context, err *errs.Error) {
	c.AbortWithStatusJSON(err.Code.HTTPStatus(), err)
}

// hashing returns the hex MD5 of body, or "" for an empty body.
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}

// responseRecorder tees the response body so it can be replayed.
type responseRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
