package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxFeaturedProducts caps how many products may carry the featured
// flag at the same time, system-wide.
const MaxFeaturedProducts = 3

// Collection names in the remote catalog store.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
)

// Product is a catalog entry. JSON tags follow the document/localStorage
// shape so the cache mirror stays byte-compatible with what the site
// always persisted.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	ImageURL       string            `json:"imageUrl"`
	Category       string            `json:"category"`
	Featured       bool              `json:"featured"`
	InStock        bool              `json:"inStock"`
	Specifications map[string]string `json:"specifications,omitempty"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	UpdatedBy      string            `json:"updatedBy"`
}

// Category is a catalog grouping. Unlike products, categories are
// soft-deleted: removal sets Deleted instead of dropping the document.
type Category struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image"`
	ImageURL     string    `json:"imageUrl"`
	ProductCount int       `json:"productCount"`
	Deleted      bool      `json:"deleted"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UpdatedBy    string    `json:"updatedBy"`
}

// Doc flattens a product into the untyped map shape the remote store
// writes. Specifications are omitted entirely when empty, never stored
// as an empty map.
func (p Product) Doc() map[string]interface{} {
	doc := map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"slug":        p.Slug,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"imageUrl":    p.ImageURL,
		"category":    p.Category,
		"featured":    p.Featured,
		"inStock":     p.InStock,
		"updatedAt":   p.UpdatedAt,
		"updatedBy":   p.UpdatedBy,
	}
	if len(p.Specifications) > 0 {
		doc["specifications"] = p.Specifications
	}
	return doc
}

// Doc flattens a category into the remote store document shape.
func (c Category) Doc() map[string]interface{} {
	return map[string]interface{}{
		"id":           c.ID,
		"title":        c.Title,
		"slug":         c.Slug,
		"image":        c.Image,
		"imageUrl":     c.ImageURL,
		"productCount": c.ProductCount,
		"deleted":      c.Deleted,
		"updatedAt":    c.UpdatedAt,
		"updatedBy":    c.UpdatedBy,
	}
}
