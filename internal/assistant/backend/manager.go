package backend

import (
	"context"
	"sync"

	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// SessionManager owns the process-wide session store: one live session per
// (tenant, user) key, created lazily and replaced wholesale on failure.
//
// The store itself is guarded, but concurrent requests for the same key still
// race by contract: a forceNew replacement can be overwritten by another
// in-flight request for that key. Callers needing strict per-key consistency
// must serialise externally.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[Key]*Session
	pool     []Factory
}

func NewSessionManager(pool []Factory) *SessionManager {
	return &SessionManager{
		sessions: make(map[Key]*Session),
		pool:     pool,
	}
}

// GetOrCreate returns the live session for key, or walks the prioritized
// pool to instantiate a fresh one. With forceNew the stored session is
// ignored and replaced. Returns nil when every backend in the pool fails,
// signalling total backend unavailability.
func (m *SessionManager) GetOrCreate(ctx context.Context, key Key, forceNew bool) *Session {
	if !forceNew {
		m.mu.RLock()
		s := m.sessions[key]
		m.mu.RUnlock()
		if s != nil {
			return s
		}
	}

	for _, f := range m.pool {
		cm, err := f.New(ctx)
		if err != nil {
			logx.Warn().Err(err).
				Str("backend", f.Name()).
				Str("session_key", key.String()).
				Msg("backend instantiation failed, trying next in pool")
			continue
		}
		s := NewSession(f.Name(), cm)
		m.mu.Lock()
		m.sessions[key] = s
		m.mu.Unlock()
		logx.Debug().
			Str("backend", f.Name()).
			Str("session_key", key.String()).
			Msg("session created")
		return s
	}

	logx.Error().Str("session_key", key.String()).Msg("model pool exhausted")
	return nil
}
