package job

import (
	"context"
	"errors"
	"testing"

	"b2b-showcase-backend/internal/domains/catalog/model"
	"b2b-showcase-backend/internal/domains/catalog/repository"
	"b2b-showcase-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRemoteStore struct {
	docs []repository.Document
	err  error
}

func (s *stubRemoteStore) GetAll(ctx context.Context, collection string) ([]repository.Document, error) {
	return s.docs, s.err
}

func (s *stubRemoteStore) GetByID(ctx context.Context, collection, id string) (repository.Document, bool, error) {
	return repository.Document{}, false, nil
}

func (s *stubRemoteStore) SetMerge(ctx context.Context, collection, id string, data map[string]interface{}) error {
	return nil
}

func (s *stubRemoteStore) SetFull(ctx context.Context, collection, id string, data map[string]interface{}) error {
	return nil
}

func (s *stubRemoteStore) Delete(ctx context.Context, collection, id string) error {
	return nil
}

func (s *stubRemoteStore) NewID(collection string) string { return "stub" }

type stubCatalogCache struct {
	mirrored [][]model.Product
}

func (s *stubCatalogCache) Products(ctx context.Context) ([]model.Product, bool) { return nil, false }

func (s *stubCatalogCache) MirrorProducts(ctx context.Context, products []model.Product) {
	s.mirrored = append(s.mirrored, products)
}

func (s *stubCatalogCache) SaveCategoryImage(ctx context.Context, categoryID, imageURL string) {}

func (s *stubCatalogCache) PurgeProductRefs(ctx context.Context, productID string) {}

func mirrorTask() *asynq.Task {
	return asynq.NewTask(shared.TypeCatalogCacheMirror, nil)
}

func TestCacheMirror_RefreshesMirror(t *testing.T) {
	store := &stubRemoteStore{docs: []repository.Document{
		{ID: "p1", Data: map[string]interface{}{"name": "Basmati Rice", "price": 25.5}},
		{ID: "p2", Data: map[string]interface{}{"name": "Red Lentils", "price": 18.0}},
	}}
	cache := &stubCatalogCache{}
	h := NewCacheMirrorHandler(store, cache)

	require.NoError(t, h.ProcessTask(context.Background(), mirrorTask()))

	require.Len(t, cache.mirrored, 1)
	require.Len(t, cache.mirrored[0], 2)
	assert.Equal(t, "basmati-rice", cache.mirrored[0][0].Slug)
}

func TestCacheMirror_RemoteFailureReturnsErrorForRetry(t *testing.T) {
	store := &stubRemoteStore{err: errors.New("unavailable")}
	cache := &stubCatalogCache{}
	h := NewCacheMirrorHandler(store, cache)

	err := h.ProcessTask(context.Background(), mirrorTask())

	require.Error(t, err)
	assert.Empty(t, cache.mirrored, "a failed fetch must not touch the mirror")
}

func TestCacheMirror_EmptyRemoteKeepsPreviousMirror(t *testing.T) {
	store := &stubRemoteStore{}
	cache := &stubCatalogCache{}
	h := NewCacheMirrorHandler(store, cache)

	require.NoError(t, h.ProcessTask(context.Background(), mirrorTask()))

	assert.Empty(t, cache.mirrored)
}
