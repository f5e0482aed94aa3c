package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/pkg/logger"
	gocache "github.com/patrickmn/go-cache"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores storefront sessions for a sliding TTL.
// Every Save restarts the session's TTL. Returned sessions are private copies.
type SessionRepository interface {
	FindByID(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

type memorySessionRepository struct {
	store *gocache.Cache
}

// NewMemorySessionRepository keeps sessions in process memory. Expired entries are
// invisible to FindByID but stay allocated until DeleteExpired runs.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySessionRepository{
		store: gocache.New(ttl, 0),
	}
}

func (r *memorySessionRepository) FindByID(_ context.Context, id string) (*model.Session, error) {
	v, ok := r.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*model.Session).Clone(), nil
}

func (r *memorySessionRepository) Save(_ context.Context, session *model.Session) error {
	r.store.Set(session.ID, session.Clone(), gocache.DefaultExpiration)
	return nil
}

func (r *memorySessionRepository) Delete(_ context.Context, id string) error {
	r.store.Delete(id)
	return nil
}

func (r *memorySessionRepository) DeleteExpired(_ context.Context) (int, error) {
	before := r.store.ItemCount()
	r.store.DeleteExpired()
	removed := before - r.store.ItemCount()

	if removed > 0 {
		logger.Debug("Expired sessions removed from memory", map[string]interface{}{
			"removed": removed,
		})
	}
	return removed, nil
}

func (r *memorySessionRepository) Count(_ context.Context) (int, error) {
	return r.store.ItemCount(), nil
}
