package server

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"skinswap/services/trading/helpers"
	"skinswap/utils"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyHeader carries the client supplied retry key
	IdempotencyHeader = "Idempotency-Key"
	// ReplayedHeader is set on responses served from the idempotency cache
	ReplayedHeader = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
	sweepInterval        = time.Minute
)

var (
	errKeyTooLong = errors.New("idempotency key too long")
	errKeyInUse   = errors.New("request with this idempotency key is still in progress")
)

type idempotentEntry struct {
	done        bool
	status      int
	contentType string
	body        []byte
	expires     time.Time
}

// IdempotencyStore remembers completed mutating responses per (user, method, path, key)
type IdempotencyStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[string]*idempotentEntry
	now       func() time.Time
	lastSweep time.Time
}

// NewIdempotencyStore creates a store keeping responses for ttl
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		ttl:     ttl,
		entries: make(map[string]*idempotentEntry),
		now:     time.Now,
	}
}

// Len returns the number of cached or in-flight keys
func (s *IdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Middleware replays the first completed response for a repeated Idempotency-Key.
// Requests without the header, or that are not POST, pass through untouched.
func (s *IdempotencyStore) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			utils.AbortJSONError(c, http.StatusBadRequest, errKeyTooLong, "invalid idempotency key")
			return
		}

		cacheKey := strings.Join([]string{helpers.CurrentUserID(c), c.Request.Method, c.Request.URL.Path, key}, "|")

		entry, fresh := s.reserve(cacheKey)
		if !fresh {
			if !entry.done {
				utils.AbortJSONError(c, http.StatusConflict, errKeyInUse, "duplicate request in progress")
				return
			}
			utils.Debug("Replaying idempotent response", map[string]any{"path": c.Request.URL.Path, "status": entry.status})
			c.Header(ReplayedHeader, "true")
			c.Data(entry.status, entry.contentType, entry.body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		completed := false
		defer func() {
			if !completed {
				s.release(cacheKey)
			}
		}()

		c.Next()

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			s.release(cacheKey)
		} else {
			s.complete(cacheKey, status, recorder.Header().Get("Content-Type"), recorder.body.Bytes())
		}
		completed = true
	}
}

// reserve returns the live entry for key, or creates an in-flight one and reports fresh=true
func (s *IdempotencyStore) reserve(key string) (idempotentEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	if e, ok := s.entries[key]; ok && now.Before(e.expires) {
		return *e, false
	}
	s.entries[key] = &idempotentEntry{expires: now.Add(s.ttl)}
	return idempotentEntry{}, true
}

func (s *IdempotencyStore) complete(key string, status int, contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &idempotentEntry{
		done:        true,
		status:      status,
		contentType: contentType,
		body:        append([]byte(nil), body...),
		expires:     s.now().Add(s.ttl),
	}
}

func (s *IdempotencyStore) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *IdempotencyStore) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
}

// bodyRecorder tees the response body so it can be cached
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
