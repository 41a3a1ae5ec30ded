package service

import (
	"context"

	"b2b-showcase-backend/internal/domains/catalog/model"
)

// ServiceInterface is the catalog state manager contract: the single
// authoritative in-memory view of products and categories for the
// running process, mediating every read and write between callers, the
// remote catalog store and the local cache mirror.
type ServiceInterface interface {
	// LoadInitial populates state: remote store, then cache mirror,
	// then seed data. Never fails; every path leaves non-empty state.
	LoadInitial(ctx context.Context)

	// LoadCategories fetches the category collection, dropping
	// soft-deleted records.
	LoadCategories(ctx context.Context) error

	// Pure in-memory reads.
	ListProducts() []model.Product
	FeaturedProducts() []model.Product
	DistinctCategories() []string
	ListCategories() []model.Category

	// Mutations. updatedBy is the caller identity; empty means the
	// fixed system identity.
	UpdateImage(ctx context.Context, productID, imageURL, updatedBy string) error
	SetFeatured(ctx context.Context, productID string, featured bool, updatedBy string) error
	SetInStock(ctx context.Context, productID string, inStock bool, updatedBy string) error
	AddProduct(ctx context.Context, req model.AddProductRequest, updatedBy string) (string, error)
	RemoveProduct(ctx context.Context, productID string) error

	AddCategory(ctx context.Context, req model.AddCategoryRequest, updatedBy string) (string, error)
	RemoveCategory(ctx context.Context, categoryID string, updatedBy string) error
	UpdateCategoryImage(ctx context.Context, categoryID, imageURL, updatedBy string) error
}
