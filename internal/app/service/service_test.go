package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	sessions   *SessionManager
	repo       repository.SessionRepository
	catalog    CatalogService
	cart       CartService
	favorites  FavoriteService
	storefront StorefrontService
	export     ExportService
}

func setupServiceTest(t *testing.T) *testServices {
	productRepo, err := repository.NewProductRepository()
	require.NoError(t, err)

	sessionRepo := repository.NewMemorySessionRepository(time.Hour)
	sessions := NewSessionManager(sessionRepo)
	catalog := NewCatalogService(productRepo)
	cart := NewCartService(sessions, productRepo)

	return &testServices{
		sessions:   sessions,
		repo:       sessionRepo,
		catalog:    catalog,
		cart:       cart,
		favorites:  NewFavoriteService(sessions, productRepo),
		storefront: NewStorefrontService(sessions, catalog),
		export:     NewExportService(cart),
	}
}

// failingSessionRepository fails every call with err
type failingSessionRepository struct {
	err error
}

func (r *failingSessionRepository) FindByID(context.Context, string) (*model.Session, error) {
	return nil, r.err
}

func (r *failingSessionRepository) Save(context.Context, *model.Session) error { return r.err }

func (r *failingSessionRepository) Delete(context.Context, string) error { return r.err }

func (r *failingSessionRepository) DeleteExpired(context.Context) (int, error) { return 0, r.err }

func (r *failingSessionRepository) Count(context.Context) (int, error) { return 0, r.err }

var errStoreDown = errors.New("store down")
