package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager owns the live wizard sessions for the HTTP facade: one session
// per wizard entry, destroyed on cancel, successful submit being its own
// exit, or TTL expiry. It also provides the serialization the session
// itself deliberately does not: Do runs at most one operation per
// session at a time.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managed
	ttl      time.Duration
	log      *zap.Logger
}

type managed struct {
	mu        sync.Mutex
	session   *Session
	expiresAt time.Time
}

func NewManager(ttl time.Duration, log *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*managed),
		ttl:      ttl,
		log:      log.With(zap.String("component", "session-manager")),
	}
}

// Create opens a fresh session and returns its id.
func (m *Manager) Create() string {
	id := uuid.NewString()

	m.mu.Lock()
	m.pruneLocked(time.Now())
	m.sessions[id] = &managed{
		session:   New(),
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	m.log.Info("Session created", zap.String("session_id", id))
	return id
}

// Do runs fn against the session, holding its lock for the duration, and
// extends the session's TTL. Returns ErrSessionNotFound for unknown or
// expired ids.
func (m *Manager) Do(id string, fn func(*Session) error) error {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok && time.Now().After(entry.expiresAt) {
		delete(m.sessions, id)
		ok = false
	}
	if ok {
		entry.expiresAt = time.Now().Add(m.ttl)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// Remove destroys the session, if it still exists.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		m.log.Info("Session removed", zap.String("session_id", id))
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) pruneLocked(now time.Time) {
	for id, entry := range m.sessions {
		if now.After(entry.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
