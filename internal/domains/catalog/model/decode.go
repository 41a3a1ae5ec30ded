package model

import (
	"time"

	"b2b-showcase-backend/internal/shared"
	"b2b-showcase-backend/internal/shared/utils"

	"github.com/shopspring/decimal"
)

// ProductFromDoc decodes an untyped store document into a Product,
// filling defaults for absent fields instead of trusting field presence
// at every read site:
//   - slug: stored value, else derived from name, else the document id
//   - imageUrl: cache-busting token appended when missing
//   - inStock: defaults to true only when the field is absent
//   - updatedAt: store timestamp, else now
//   - updatedBy: stored value, else "system"
func ProductFromDoc(id string, data map[string]interface{}) Product {
	p := Product{
		ID:          id,
		Name:        docString(data, "name"),
		Description: docString(data, "description"),
		Price:       docDecimal(data, "price"),
		Category:    docString(data, "category"),
		Featured:    docBool(data, "featured", false),
		InStock:     docBool(data, "inStock", true),
		UpdatedAt:   docTime(data, "updatedAt"),
		UpdatedBy:   docString(data, "updatedBy"),
	}

	p.ImageURL = utils.EnsureCacheBust(docString(data, "imageUrl"))

	p.Slug = docString(data, "slug")
	if p.Slug == "" {
		p.Slug = utils.GenerateSlug(p.Name)
	}
	if p.Slug == "" {
		p.Slug = id
	}

	if p.UpdatedBy == "" {
		p.UpdatedBy = "system"
	}

	if specs := docStringMap(data, "specifications"); len(specs) > 0 {
		p.Specifications = specs
	}

	return p
}

// CategoryFromDoc decodes an untyped store document into a Category.
func CategoryFromDoc(id string, data map[string]interface{}) Category {
	c := Category{
		ID:           id,
		Title:        docString(data, "title"),
		Slug:         docString(data, "slug"),
		Image:        docString(data, "image"),
		ImageURL:     docString(data, "imageUrl"),
		ProductCount: docInt(data, "productCount"),
		Deleted:      docBool(data, "deleted", false),
		UpdatedAt:    docTime(data, "updatedAt"),
		UpdatedBy:    docString(data, "updatedBy"),
	}

	if c.Slug == "" {
		c.Slug = utils.GenerateCategorySlug(c.Title)
	}
	if c.ImageURL == "" {
		c.ImageURL = c.Image
	}
	if c.UpdatedBy == "" {
		c.UpdatedBy = shared.SystemIdentity
	}

	return c
}

// ---- untyped field access ----

func docString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func docBool(data map[string]interface{}, key string, def bool) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return def
}

func docInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func docDecimal(data map[string]interface{}, key string) decimal.Decimal {
	switch v := data[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func docTime(data map[string]interface{}, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Now()
}

func docStringMap(data map[string]interface{}, key string) map[string]string {
	raw, ok := data[key].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok && k != "" && s != "" {
			out[k] = s
		}
	}
	return out
}
