// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// ProductSnapshot is the read-only subset of a catalog product used to price guest cart lines.
// Authenticated carts carry the same shape inside each line, populated by the backend.
type ProductSnapshot struct {
	ID            string          `json:"_id"`                     // The backend's product identifier.
	Title         string          `json:"title"`                   // Display title.
	Description   string          `json:"description,omitempty"`   // Optional long description.
	Price         float64         `json:"price"`                   // List price.
	DiscountPrice *float64        `json:"discountPrice,omitempty"` // Sale price, when the product is on offer.
	Images        json.RawMessage `json:"images,omitempty"`        // Passed through to the presentation layer untouched.
	Stock         *int            `json:"stock,omitempty"`         // Units available; nil when the backend does not report stock.
	IsActive      bool            `json:"isActive"`                // False for products hidden by the seller.
	IsDeleted     bool            `json:"isDeleted"`               // True once the product is soft-deleted.
}

// UnitPrice returns the price one unit is charged at: the discount price when
// present and positive, otherwise the list price.
func (p *ProductSnapshot) UnitPrice() float64 {
	if p == nil {
		return 0
	}
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}

	return p.Price
}

// Purchasable reports whether the product may appear in a cart at all.
func (p *ProductSnapshot) Purchasable() bool {
	return p != nil && p.IsActive && !p.IsDeleted
}
