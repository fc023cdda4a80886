package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"personnel-portal/internal/core"
)

type session struct {
	Identity  core.Identity
	CreatedAt time.Time
}

// sessionStore is a thread-safe in-memory session store with TTL expiry,
// keyed by an opaque token carried in the session cookie.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{sessions: make(map[string]session), ttl: ttl}
}

// create starts a session for identity and returns its opaque token.
func (s *sessionStore) create(identity core.Identity) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{Identity: identity, CreatedAt: time.Now()}
	return token
}

// get returns the identity bound to token, evicting it first when expired.
func (s *sessionStore) get(token string) (*core.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Since(sess.CreatedAt) > s.ttl {
		delete(s.sessions, token)
		return nil, false
	}
	identity := sess.Identity
	return &identity, true
}

func (s *sessionStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// startPurge starts a background goroutine that evicts expired sessions
// every 5 minutes.
func (s *sessionStore) startPurge(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				for token, sess := range s.sessions {
					if time.Since(sess.CreatedAt) > s.ttl {
						delete(s.sessions, token)
					}
				}
				s.mu.Unlock()
			}
		}
	}()
}
