package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/pkg/logger"
)

const sessionLockStripes = 64

// SessionManager applies state transitions to one session at a time.
// Updates to the same session ID are serialized; different sessions proceed in parallel.
type SessionManager struct {
	repo  repository.SessionRepository
	locks [sessionLockStripes]sync.Mutex
	now   func() time.Time
}

func NewSessionManager(repo repository.SessionRepository) *SessionManager {
	return &SessionManager{
		repo: repo,
		now:  time.Now,
	}
}

func (m *SessionManager) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &m.locks[h.Sum32()%sessionLockStripes]
}

// View returns the current session state. An unknown ID yields a fresh, unsaved session.
func (m *SessionManager) View(ctx context.Context, id string) (*model.Session, error) {
	session, err := m.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return model.NewSession(id, m.now()), nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Update loads the session, applies fn and saves the result under the session's lock.
// Nothing is saved when fn returns an error.
func (m *SessionManager) Update(ctx context.Context, id string, fn func(*model.Session) error) (*model.Session, error) {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	session, err := m.View(ctx, id)
	if err != nil {
		logger.Error("Failed to load session", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = m.now()
	if err := m.repo.Save(ctx, session); err != nil {
		logger.Error("Failed to save session", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, err
	}
	return session, nil
}

// End discards the session
func (m *SessionManager) End(ctx context.Context, id string) error {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	return m.repo.Delete(ctx, id)
}
