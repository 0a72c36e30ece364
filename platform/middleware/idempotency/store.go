package idempotency

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"aprova.app/platform/model"
)

// Store keeps idempotency entries in process, evicting the least recently
// used entry once size is reached and any entry older than ttl.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[model.IdempotencyKey, model.IdempotencyRecord]
	now   func() time.Time
}

func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[model.IdempotencyKey, model.IdempotencyRecord](size, nil, ttl),
		now:   time.Now,
	}
}

// begin returns the existing entry for key, or marks key as processing and
// reports false when there is none. Check and mark happen under one lock so
// two concurrent first requests cannot both run.
func (s *Store) begin(key model.IdempotencyKey, bodyHash string) (model.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache.Get(key); ok {
		return entry, true
	}
	s.cache.Add(key, model.IdempotencyRecord{
		State:     model.IdempotencyProcessing,
		BodyHash:  bodyHash,
		StartedAt: s.now(),
	})
	return model.IdempotencyRecord{}, false
}

func (s *Store) complete(key model.IdempotencyKey, bodyHash string, statusCode int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, _ := s.cache.Peek(key)
	entry.State = model.IdempotencyCompleted
	entry.BodyHash = bodyHash
	entry.StatusCode = statusCode
	entry.Body = append([]byte(nil), body...)
	entry.CompletedAt = s.now()
	if entry.StartedAt.IsZero() {
		entry.StartedAt = entry.CompletedAt
	}
	s.cache.Add(key, entry)
}

// clear drops key so the client can retry a failed request.
func (s *Store) clear(key model.IdempotencyKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(key)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
