package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingRepository records DeleteExpired calls
type countingRepository struct {
	repository.SessionRepository
	sweeps atomic.Int32
}

func (r *countingRepository) DeleteExpired(ctx context.Context) (int, error) {
	r.sweeps.Add(1)
	return r.SessionRepository.DeleteExpired(ctx)
}

func TestSessionSweeper_SweepRemovesExpired(t *testing.T) {
	repo := repository.NewMemorySessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.NewSession("s-1", time.Now())))
	require.NoError(t, repo.Save(ctx, model.NewSession("s-2", time.Now())))

	sweeper := NewSessionSweeper(repo, "@every 1h")
	assert.Equal(t, 0, sweeper.Sweep(ctx))

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 2, sweeper.Sweep(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSessionSweeper_RunsOnSchedule(t *testing.T) {
	repo := &countingRepository{SessionRepository: repository.NewMemorySessionRepository(time.Hour)}

	sweeper := NewSessionSweeper(repo, "@every 1s")
	require.NoError(t, sweeper.Start())

	assert.Eventually(t, func() bool {
		return repo.sweeps.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)

	sweeper.Stop()
}

func TestSessionSweeper_InvalidSchedule(t *testing.T) {
	sweeper := NewSessionSweeper(repository.NewMemorySessionRepository(time.Hour), "every now and then")

	assert.Error(t, sweeper.Start())
}
