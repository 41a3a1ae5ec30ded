package job

import (
	"context"
	"fmt"

	"b2b-showcase-backend/internal/domains/catalog/model"
	"b2b-showcase-backend/internal/domains/catalog/repository"
	"b2b-showcase-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// CacheMirrorHandler rewrites the local product mirror from the remote
// catalog store. It runs on the worker, both on a schedule and when a
// mutation enqueues a refresh.
type CacheMirrorHandler struct {
	store repository.RemoteStore
	cache repository.CatalogCache
}

func NewCacheMirrorHandler(store repository.RemoteStore, cache repository.CatalogCache) *CacheMirrorHandler {
	return &CacheMirrorHandler{
		store: store,
		cache: cache,
	}
}

// ProcessTask handles shared.TypeCatalogCacheMirror. A remote failure
// is returned so asynq retries; the previous mirror stays in place
// untouched in the meantime.
func (h *CacheMirrorHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	docs, err := h.store.GetAll(ctx, model.CollectionProducts)
	if err != nil {
		return fmt.Errorf("cache mirror: remote fetch failed: %w", err)
	}

	if len(docs) == 0 {
		// Do not overwrite a useful mirror with an empty list.
		logger.Info("cache mirror: remote store empty, keeping previous mirror", nil)
		return nil
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, model.ProductFromDoc(doc.ID, doc.Data))
	}

	h.cache.MirrorProducts(ctx, products)

	logger.Info("cache mirror: refreshed", map[string]interface{}{
		"count": len(products),
	})
	return nil
}
