package repository

import (
	"context"

	"b2b-showcase-backend/internal/domains/catalog/model"
)

// Document is one untyped record from the remote catalog store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// RemoteStore is the document-database contract. The store is the
// durable system of record; consistency across documents is eventual,
// not transactional.
type RemoteStore interface {
	// GetAll returns every document in a collection.
	GetAll(ctx context.Context, collection string) ([]Document, error)

	// GetByID returns a single document. found = false when absent.
	GetByID(ctx context.Context, collection, id string) (Document, bool, error)

	// SetMerge merge-writes partial fields into a document.
	SetMerge(ctx context.Context, collection, id string, fields map[string]interface{}) error

	// SetFull replaces (or creates) the whole document.
	SetFull(ctx context.Context, collection, id string, record map[string]interface{}) error

	// Delete hard-deletes a document. Deleting an absent id succeeds.
	Delete(ctx context.Context, collection, id string) error

	// NewID reserves a store-assigned identifier for a collection.
	NewID(collection string) string
}

// CatalogCache is the best-effort local mirror. Every method swallows
// its own failures: the cache has no ownership authority and must never
// break a catalog operation.
type CatalogCache interface {
	// Products reads the last mirrored product list. ok = false on
	// miss or failure.
	Products(ctx context.Context) ([]model.Product, bool)

	// MirrorProducts overwrites the product mirror.
	MirrorProducts(ctx context.Context, products []model.Product)

	// SaveCategoryImage records a category's last known image fields.
	SaveCategoryImage(ctx context.Context, categoryID, imageURL string)

	// PurgeProductRefs drops any reference to productID from the
	// auxiliary lists (recently viewed, featured snapshots).
	PurgeProductRefs(ctx context.Context, productID string)
}
