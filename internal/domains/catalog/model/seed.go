package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedProducts is the fixed fallback list installed when both the
// remote store and the local cache are unavailable. Exactly three
// entries are featured, matching the cap.
func SeedProducts() []Product {
	now := time.Now()
	return []Product{
		{
			ID:          "1",
			Name:        "Premium Basmati Rice",
			Slug:        "premium-basmati-rice",
			Description: "Long-grain aromatic rice known for its nutty flavor and floral aroma. Perfect for pilaf, biryani, and other rice dishes.",
			Price:       decimal.NewFromInt(0),
			ImageURL:    "https://images.pexels.com/photos/4110251/pexels-photo-4110251.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Category:    "rice",
			Featured:    true,
			InStock:     true,
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "2",
			Name:        "Organic Sunflower Seeds",
			Slug:        "organic-sunflower-seeds",
			Description: "High-quality organic sunflower seeds rich in nutrients and perfect for oil production or direct consumption.",
			Price:       decimal.NewFromInt(0),
			ImageURL:    "https://images.pexels.com/photos/326158/pexels-photo-326158.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Category:    "seeds",
			Featured:    true,
			InStock:     true,
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "3",
			Name:        "Refined Soybean Oil",
			Slug:        "refined-soybean-oil",
			Description: "Pure refined soybean oil suitable for cooking, food processing, and industrial applications.",
			Price:       decimal.NewFromInt(0),
			ImageURL:    "https://images.pexels.com/photos/725998/pexels-photo-725998.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Category:    "oil",
			Featured:    true,
			InStock:     true,
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "4",
			Name:        "High-Density Polyethylene",
			Slug:        "high-density-polyethylene",
			Description: "Premium HDPE resin for manufacturing durable plastic products with excellent impact resistance and tensile strength.",
			Price:       decimal.NewFromInt(0),
			ImageURL:    "https://images.pexels.com/photos/39348/plastic-waste-environment-recycling-39348.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Category:    "raw-polymers",
			InStock:     true,
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "5",
			Name:        "Calcium Bromide Solution",
			Slug:        "calcium-bromide-solution",
			Description: "High-purity calcium bromide solution used in drilling fluids, completion fluids, and workover fluids in oil and gas operations.",
			Price:       decimal.NewFromInt(0),
			ImageURL:    "https://images.pexels.com/photos/6195085/pexels-photo-6195085.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Category:    "bromine-salt",
			InStock:     false,
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "6",
			Name:        "Jasmine Rice",
			Slug:        "jasmine-rice",
			Description: "Premium Thai jasmine rice known for its sweet aroma, soft texture, and delicate flavor. Perfect for Asian cuisine.",
			Price:       decimal.NewFromInt(0),
			ImageURL:    "https://images.pexels.com/photos/7421213/pexels-photo-7421213.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Category:    "rice",
			InStock:     true,
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
	}
}
