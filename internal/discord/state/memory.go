package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/whykushh/discord-panel-bot/internal/logger"
)

type memoryManager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewMemoryManager constructs an in-memory Manager. Every write refreshes
// the session deadline by ttl; a non-positive ttl disables expiry.
func NewMemoryManager(ttl time.Duration) Manager {
	return &memoryManager{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (m *memoryManager) touch(sess *Session) {
	if m.ttl > 0 {
		sess.Deadline = time.Now().Add(m.ttl)
	}
}

func (m *memoryManager) session(userID string) *Session {
	sess, ok := m.sessions[userID]
	if !ok {
		sess = &Session{Flow: FlowIdle}
		m.sessions[userID] = sess
	}
	return sess
}

// Get returns a copy of the session for a user, or an idle session if
// none exists.
func (m *memoryManager) Get(userID string) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sess, ok := m.sessions[userID]; ok {
		return *sess
	}
	return Session{Flow: FlowIdle}
}

// SetFlow moves the user to the given wizard step, creating a session if
// necessary.
func (m *memoryManager) SetFlow(userID string, f Flow) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := m.session(userID)
	sess.Flow = f
	m.touch(sess)
}

// Flow returns the user's current wizard step, or FlowIdle if none exists.
func (m *memoryManager) Flow(userID string) Flow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sess, ok := m.sessions[userID]; ok {
		return sess.Flow
	}
	return FlowIdle
}

// SetEmbed stores a pending embed draft for the user.
func (m *memoryManager) SetEmbed(userID string, d *EmbedDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := m.session(userID)
	sess.Embed = d
	m.touch(sess)
}

// Embed retrieves the pending embed draft for the user, if any.
func (m *memoryManager) Embed(userID string) (*EmbedDraft, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[userID]
	if !ok || sess.Embed == nil {
		return nil, false
	}
	return sess.Embed, true
}

// SetAnnounce stores a pending announcement draft for the user.
func (m *memoryManager) SetAnnounce(userID string, d *AnnouncementDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := m.session(userID)
	sess.Announce = d
	m.touch(sess)
}

// Announce retrieves the pending announcement draft for the user, if any.
func (m *memoryManager) Announce(userID string) (*AnnouncementDraft, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[userID]
	if !ok || sess.Announce == nil {
		return nil, false
	}
	return sess.Announce, true
}

// Clear removes the entire session for a user.
func (m *memoryManager) Clear(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

// InProgress reports whether the user currently has an active wizard step.
func (m *memoryManager) InProgress(userID string) bool {
	return m.Flow(userID) != FlowIdle
}

// Sweep drops every session whose deadline passed.
func (m *memoryManager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	swept := 0
	for userID, sess := range m.sessions {
		if !sess.Deadline.IsZero() && now.After(sess.Deadline) {
			delete(m.sessions, userID)
			swept++
		}
	}
	return swept
}

// StartSweep runs periodic expiry sweeps until ctx is done.
func StartSweep(ctx context.Context, m Manager, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if swept := m.Sweep(now); swept > 0 {
					logger.Debug(ctx, "flow", "flow.sweep",
						slog.Int("swept", swept),
					)
				}
			}
		}
	}()
}
