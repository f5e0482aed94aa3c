package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Minute)

	session := model.NewSession("s-1", time.Now())
	session.Cart.AddItem(model.Product{ID: "1", Name: "Wireless Headphones", Price: 89.99})
	require.NoError(t, repo.Save(ctx, session))

	found, err := repo.FindByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 1, found.Cart.TotalCount())
	assert.Equal(t, model.CategoryAll, found.SelectedCategory)
}

func TestMemorySessionRepository_IsolatesCallers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Minute)

	session := model.NewSession("s-1", time.Now())
	require.NoError(t, repo.Save(ctx, session))

	// mutations after Save and on loaded copies are invisible until saved again
	session.Cart.AddItem(model.Product{ID: "1"})
	loaded, err := repo.FindByID(ctx, "s-1")
	require.NoError(t, err)
	loaded.Favorites.Toggle("1")

	again, err := repo.FindByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Cart.Len())
	assert.Equal(t, 0, again.Favorites.Len())
}

func TestMemorySessionRepository_NotFound(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Minute)
	require.NoError(t, repo.Save(ctx, model.NewSession("s-1", time.Now())))

	require.NoError(t, repo.Delete(ctx, "s-1"))

	_, err := repo.FindByID(ctx, "s-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(20 * time.Millisecond)
	require.NoError(t, repo.Save(ctx, model.NewSession("old", time.Now())))

	time.Sleep(40 * time.Millisecond)
	require.NoError(t, repo.Save(ctx, model.NewSession("fresh", time.Now())))

	_, err := repo.FindByID(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "storefront:session:abc", sessionKey("abc"))
}
