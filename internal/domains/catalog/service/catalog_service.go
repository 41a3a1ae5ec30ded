package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"b2b-showcase-backend/internal/domains/catalog/model"
	"b2b-showcase-backend/internal/domains/catalog/repository"
	"b2b-showcase-backend/internal/infrastructure/storage"
	"b2b-showcase-backend/internal/shared"
	"b2b-showcase-backend/internal/shared/utils"
	"b2b-showcase-backend/pkg/events"
	"b2b-showcase-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// CatalogService owns the in-memory catalog state. All access goes
// through the RWMutex; the slice order is the store's return order with
// new products appended, so listings stay stable across reads.
type CatalogService struct {
	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category

	store       repository.RemoteStore
	cache       repository.CatalogCache
	bus         *events.Bus
	asynqClient *asynq.Client // optional; nil disables mirror enqueue
}

// NewService - Constructor with DI. asynqClient may be nil (tests, CLI).
func NewService(
	store repository.RemoteStore,
	cache repository.CatalogCache,
	bus *events.Bus,
	asynqClient *asynq.Client,
) ServiceInterface {
	return &CatalogService{
		store:       store,
		cache:       cache,
		bus:         bus,
		asynqClient: asynqClient,
	}
}

// ========================================
// INITIAL LOAD & FALLBACK CHAIN
// ========================================

// LoadInitial replaces the in-memory product state.
//
// Fallback chain: remote store → cache mirror → seed data. No path
// returns an error to the caller; the session always starts with a
// non-empty catalog.
func (s *CatalogService) LoadInitial(ctx context.Context) {
	docs, err := s.store.GetAll(ctx, model.CollectionProducts)
	if err == nil {
		if len(docs) == 0 {
			// Empty store: fall straight through to seed data, the
			// mirror would only hold an older copy of the same store.
			logger.Info("catalog: remote store empty, installing seed data", nil)
			s.replaceProducts(model.SeedProducts())
			return
		}

		products := make([]model.Product, 0, len(docs))
		for _, doc := range docs {
			products = append(products, model.ProductFromDoc(doc.ID, doc.Data))
		}
		s.replaceProducts(products)
		logger.Info("catalog: loaded products from remote store", map[string]interface{}{
			"count": len(products),
		})
		return
	}

	logger.Warn("catalog: remote load failed, trying cache mirror", err)

	if cached, ok := s.cache.Products(ctx); ok {
		s.replaceProducts(cached)
		logger.Info("catalog: loaded products from cache mirror", map[string]interface{}{
			"count": len(cached),
		})
		return
	}

	logger.Info("catalog: cache mirror empty, installing seed data", nil)
	s.replaceProducts(model.SeedProducts())
}

// LoadCategories fetches the categories collection. Soft-deleted
// records are dropped at the boundary.
func (s *CatalogService) LoadCategories(ctx context.Context) error {
	docs, err := s.store.GetAll(ctx, model.CollectionCategories)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	categories := make([]model.Category, 0, len(docs))
	for _, doc := range docs {
		c := model.CategoryFromDoc(doc.ID, doc.Data)
		if c.Deleted {
			continue
		}
		categories = append(categories, c)
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()

	return nil
}

func (s *CatalogService) replaceProducts(products []model.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

// ========================================
// PURE READS
// ========================================

func (s *CatalogService) ListProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) FeaturedProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// DistinctCategories returns the distinct category values of the
// current products, first-seen order.
func (s *CatalogService) DistinctCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *CatalogService) ListCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ========================================
// PRODUCT MUTATIONS
// ========================================

// UpdateImage replaces a product's image URL, appending a fresh
// cache-busting token.
//
// NOTE: a remote store failure here is logged and swallowed - the
// in-memory update proceeds regardless. Image changes are cosmetic and
// the UI must stay responsive even when the durable write fails. Every
// other mutation propagates store failures; keep the asymmetry, the
// admin tooling depends on it.
func (s *CatalogService) UpdateImage(ctx context.Context, productID, imageURL, updatedBy string) error {
	if productID == "" || imageURL == "" {
		return fmt.Errorf("%w: product id and image url are required", model.ErrMissingRequiredFields)
	}
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	s.mu.RLock()
	_, found := s.findLocked(productID)
	s.mu.RUnlock()
	if !found {
		return fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}

	busted := utils.CacheBust(imageURL)
	now := time.Now()

	err := s.store.SetMerge(ctx, model.CollectionProducts, productID, map[string]interface{}{
		"imageUrl":  busted,
		"updatedAt": now,
		"updatedBy": updatedBy,
	})
	if err != nil {
		// Best-effort: continue with the local update.
		logger.Error("catalog: image update store write failed, continuing locally", err)
	}

	s.mu.Lock()
	if idx, ok := s.findLocked(productID); ok {
		s.products[idx].ImageURL = busted
		s.products[idx].UpdatedAt = now
		s.products[idx].UpdatedBy = updatedBy
	}
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Name:     events.ProductUpdated,
		EntityID: productID,
		Fields: map[string]interface{}{
			"imageUrl":  busted,
			"timestamp": now.UnixMilli(),
		},
	})

	return nil
}

// SetFeatured toggles promotional placement. Featuring fails fast with
// ErrFeaturedLimitReached when three other products are already
// featured - checked before any I/O, so no round-trip is wasted.
//
// The check runs against this session's snapshot only; two sessions
// featuring concurrently can still jointly exceed the cap (documented
// race, no cross-session coordination).
func (s *CatalogService) SetFeatured(ctx context.Context, productID string, featured bool, updatedBy string) error {
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	s.mu.RLock()
	_, found := s.findLocked(productID)
	otherFeatured := 0
	for _, p := range s.products {
		if p.Featured && p.ID != productID {
			otherFeatured++
		}
	}
	s.mu.RUnlock()

	if !found {
		return fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}
	if featured && otherFeatured >= model.MaxFeaturedProducts {
		return model.ErrFeaturedLimitReached
	}

	now := time.Now()
	err := s.store.SetMerge(ctx, model.CollectionProducts, productID, map[string]interface{}{
		"featured":  featured,
		"updatedAt": now,
		"updatedBy": updatedBy,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	if idx, ok := s.findLocked(productID); ok {
		s.products[idx].Featured = featured
		s.products[idx].UpdatedAt = now
		s.products[idx].UpdatedBy = updatedBy
	}
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Name:     events.ProductUpdated,
		EntityID: productID,
		Fields:   map[string]interface{}{"featured": featured},
	})

	return nil
}

// SetInStock toggles availability. Store failures propagate.
func (s *CatalogService) SetInStock(ctx context.Context, productID string, inStock bool, updatedBy string) error {
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	s.mu.RLock()
	_, found := s.findLocked(productID)
	s.mu.RUnlock()
	if !found {
		return fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}

	now := time.Now()
	err := s.store.SetMerge(ctx, model.CollectionProducts, productID, map[string]interface{}{
		"inStock":   inStock,
		"updatedAt": now,
		"updatedBy": updatedBy,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	if idx, ok := s.findLocked(productID); ok {
		s.products[idx].InStock = inStock
		s.products[idx].UpdatedAt = now
		s.products[idx].UpdatedBy = updatedBy
	}
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Name:     events.ProductUpdated,
		EntityID: productID,
		Fields:   map[string]interface{}{"inStock": inStock},
	})

	return nil
}

// AddProduct validates the draft, derives the slug, writes the full
// record to the store under a store-assigned id and appends it to the
// in-memory state. Returns the new id.
func (s *CatalogService) AddProduct(ctx context.Context, req model.AddProductRequest, updatedBy string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = storage.PlaceholderImageURL
	}

	product := model.Product{
		ID:          s.store.NewID(model.CollectionProducts),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    imageURL,
		Category:    req.Category,
		Featured:    false,
		InStock:     true,
		UpdatedAt:   time.Now(),
		UpdatedBy:   updatedBy,
	}
	if len(req.Specifications) > 0 {
		specs := make(map[string]string, len(req.Specifications))
		for k, v := range req.Specifications {
			if k != "" && v != "" {
				specs[k] = v
			}
		}
		if len(specs) > 0 {
			product.Specifications = specs
		}
	}

	if err := s.store.SetFull(ctx, model.CollectionProducts, product.ID, product.Doc()); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Name:     events.ProductAdded,
		EntityID: product.ID,
		Fields:   map[string]interface{}{"name": product.Name},
	})

	logger.Info("catalog: product added", map[string]interface{}{
		"id":   product.ID,
		"slug": product.Slug,
	})
	return product.ID, nil
}

// RemoveProduct hard-deletes a product. Idempotent: removing an id that
// is not present is a no-op success, and the auxiliary cache purge
// tolerates missing entries the same way.
func (s *CatalogService) RemoveProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return fmt.Errorf("%w: product id is required", model.ErrMissingRequiredFields)
	}

	s.mu.RLock()
	var name string
	if idx, ok := s.findLocked(productID); ok {
		name = s.products[idx].Name
	}
	s.mu.RUnlock()

	if err := s.store.Delete(ctx, model.CollectionProducts, productID); err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	if idx, ok := s.findLocked(productID); ok {
		s.products = append(s.products[:idx], s.products[idx+1:]...)
	}
	s.mu.Unlock()

	s.cache.PurgeProductRefs(ctx, productID)

	// The admin pages listen on several names; fire them all.
	for _, evtName := range []string{events.ProductRemoved, events.ProductDeleted, events.ProductUpdated} {
		s.bus.Publish(events.Event{
			Name:     evtName,
			EntityID: productID,
			Fields:   map[string]interface{}{"name": name},
		})
	}

	return nil
}

// ========================================
// CATEGORY MUTATIONS
// ========================================

// AddCategory creates a category record. The slug folds whitespace
// only, unlike product slugs.
func (s *CatalogService) AddCategory(ctx context.Context, req model.AddCategoryRequest, updatedBy string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	category := model.Category{
		ID:        s.store.NewID(model.CollectionCategories),
		Title:     req.Title,
		Slug:      utils.GenerateCategorySlug(req.Title),
		Image:     req.Image,
		ImageURL:  req.Image,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	}

	if err := s.store.SetFull(ctx, model.CollectionCategories, category.ID, category.Doc()); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.mu.Unlock()

	s.bus.Publish(events.Event{Name: events.RefreshCategories, EntityID: category.ID})

	return category.ID, nil
}

// RemoveCategory soft-deletes: the record stays in the store with a
// deleted flag. Products are hard-deleted instead; do not unify the two
// without confirming the asymmetry is unintended.
func (s *CatalogService) RemoveCategory(ctx context.Context, categoryID string, updatedBy string) error {
	if categoryID == "" {
		return fmt.Errorf("%w: category id is required", model.ErrMissingRequiredFields)
	}
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	err := s.store.SetMerge(ctx, model.CollectionCategories, categoryID, map[string]interface{}{
		"deleted":   true,
		"updatedAt": time.Now(),
		"updatedBy": updatedBy,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.bus.Publish(events.Event{Name: events.RefreshCategories, EntityID: categoryID})

	return nil
}

// UpdateCategoryImage replaces a category's image and opportunistically
// refreshes the local mirrors: the categoryCache entry, the product
// mirror, and (when a queue client is wired) a background mirror task.
func (s *CatalogService) UpdateCategoryImage(ctx context.Context, categoryID, imageURL, updatedBy string) error {
	if categoryID == "" || imageURL == "" {
		return fmt.Errorf("%w: category id and image url are required", model.ErrMissingRequiredFields)
	}
	if updatedBy == "" {
		updatedBy = shared.SystemIdentity
	}

	s.mu.RLock()
	found := false
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return fmt.Errorf("%w: %s", model.ErrCategoryNotFound, categoryID)
	}

	busted := utils.CacheBust(imageURL)
	now := time.Now()

	err := s.store.SetMerge(ctx, model.CollectionCategories, categoryID, map[string]interface{}{
		"image":     busted,
		"imageUrl":  busted,
		"updatedAt": now,
		"updatedBy": updatedBy,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteStore, err)
	}

	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			s.categories[i].Image = busted
			s.categories[i].ImageURL = busted
			s.categories[i].UpdatedAt = now
			s.categories[i].UpdatedBy = updatedBy
			break
		}
	}
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	s.cache.SaveCategoryImage(ctx, categoryID, busted)
	s.cache.MirrorProducts(ctx, products)
	s.enqueueMirror()

	s.bus.Publish(events.Event{
		Name:     events.CategoryUpdated,
		EntityID: categoryID,
		Fields: map[string]interface{}{
			"imageUrl":  busted,
			"timestamp": now.UnixMilli(),
		},
	})
	s.bus.Publish(events.Event{Name: events.RefreshCategories, EntityID: categoryID})

	return nil
}

// ========================================
// INTERNAL
// ========================================

// findLocked returns the slice index of productID. Caller holds s.mu.
func (s *CatalogService) findLocked(productID string) (int, bool) {
	for i := range s.products {
		if s.products[i].ID == productID {
			return i, true
		}
	}
	return 0, false
}

// enqueueMirror schedules a background refresh of the product mirror
// from the remote store. Best-effort.
func (s *CatalogService) enqueueMirror() {
	if s.asynqClient == nil {
		return
	}

	task := asynq.NewTask(shared.TypeCatalogCacheMirror, nil)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue(shared.QueueCatalog)); err != nil {
		logger.Warn("catalog: failed to enqueue cache mirror task", err)
	}
}
