package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// AddProductRequest is the creation payload. Price uses a pointer so a
// missing field is distinguishable from an explicit zero.
type AddProductRequest struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          *decimal.Decimal  `json:"price"`
	Category       string            `json:"category"`
	ImageURL       string            `json:"imageUrl"`
	Slug           string            `json:"slug"`
	Specifications map[string]string `json:"specifications"`
}

// Validate rejects the draft before any write is attempted.
func (r AddProductRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Price, validation.Required),
		validation.Field(&r.Category, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}

	if r.Price != nil && r.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrMissingRequiredFields)
	}

	return nil
}

// AddCategoryRequest is the category creation payload.
type AddCategoryRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

func (r AddCategoryRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}
	return nil
}

// UpdateImageRequest carries a replacement image URL.
type UpdateImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (r UpdateImageRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.ImageURL, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}
	return nil
}

// UpdateFeaturedRequest toggles promotional placement.
type UpdateFeaturedRequest struct {
	Featured *bool `json:"featured"`
}

func (r UpdateFeaturedRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Featured, validation.NotNil),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}
	return nil
}

// UpdateStockRequest toggles availability.
type UpdateStockRequest struct {
	InStock *bool `json:"inStock"`
}

func (r UpdateStockRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.InStock, validation.NotNil),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingRequiredFields, err)
	}
	return nil
}
