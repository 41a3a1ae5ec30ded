package repository

import (
	"context"
	"time"

	"b2b-showcase-backend/internal/domains/catalog/model"
	"b2b-showcase-backend/pkg/cache"
	"b2b-showcase-backend/pkg/logger"
)

// Cache keys, matching the storage contract the site has always used.
const (
	KeyProducts      = "products"
	KeyCategoryCache = "categoryCache"

	// Auxiliary lists that may reference product ids.
	KeyRecentProducts   = "recentProducts"
	KeyViewedProducts   = "viewedProducts"
	KeyFeaturedProducts = "featuredProducts"
)

// categoryCacheEntry is one value in the categoryCache map: the last
// known image fields plus the write timestamp.
type categoryCacheEntry struct {
	Image     string `json:"image"`
	ImageURL  string `json:"imageUrl"`
	Timestamp int64  `json:"timestamp"`
}

// CatalogCacheStore implements CatalogCache on the shared cache layer.
// Every failure is logged and swallowed: the mirror is best-effort and
// must never surface an error to a catalog operation.
type CatalogCacheStore struct {
	cache cache.Cache
}

func NewCatalogCache(c cache.Cache) CatalogCache {
	return &CatalogCacheStore{cache: c}
}

func (s *CatalogCacheStore) Products(ctx context.Context) ([]model.Product, bool) {
	var products []model.Product
	found, err := s.cache.Get(ctx, KeyProducts, &products)
	if err != nil {
		logger.Warn("catalog cache: product mirror read failed", err)
		return nil, false
	}
	if !found || len(products) == 0 {
		return nil, false
	}
	return products, true
}

func (s *CatalogCacheStore) MirrorProducts(ctx context.Context, products []model.Product) {
	if err := s.cache.Set(ctx, KeyProducts, products, 0); err != nil {
		logger.Warn("catalog cache: product mirror write failed", err)
	}
}

func (s *CatalogCacheStore) SaveCategoryImage(ctx context.Context, categoryID, imageURL string) {
	entries := make(map[string]categoryCacheEntry)
	if _, err := s.cache.Get(ctx, KeyCategoryCache, &entries); err != nil {
		logger.Warn("catalog cache: category cache read failed", err)
		entries = make(map[string]categoryCacheEntry)
	}

	entries[categoryID] = categoryCacheEntry{
		Image:     imageURL,
		ImageURL:  imageURL,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := s.cache.Set(ctx, KeyCategoryCache, entries, 0); err != nil {
		logger.Warn("catalog cache: category cache write failed", err)
	}
}

func (s *CatalogCacheStore) PurgeProductRefs(ctx context.Context, productID string) {
	for _, key := range []string{KeyRecentProducts, KeyViewedProducts, KeyFeaturedProducts} {
		var entries []map[string]interface{}
		found, err := s.cache.Get(ctx, key, &entries)
		if err != nil {
			logger.Warn("catalog cache: purge read failed for "+key, err)
			continue
		}
		if !found {
			continue
		}

		filtered := entries[:0]
		for _, entry := range entries {
			if entry["id"] == productID || entry["productId"] == productID {
				continue
			}
			filtered = append(filtered, entry)
		}

		if err := s.cache.Set(ctx, key, filtered, 0); err != nil {
			logger.Warn("catalog cache: purge write failed for "+key, err)
		}
	}
}
