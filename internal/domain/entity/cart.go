package entity

import (
	"bytes"
	"encoding/json"
)

// CartItem is one line of a cart. Authenticated lines always carry a product;
// guest lines carry one once the catalog lookup has resolved them.
type CartItem struct {
	ProductID string           `json:"productId"`         // Identifier of the product on this line.
	Product   *ProductSnapshot `json:"product,omitempty"` // Resolved product, nil while unresolved.
	Quantity  int              `json:"quantity"`          // Units on this line, at least 1.
}

// ID returns the product identifier of the line, preferring the resolved product.
func (i CartItem) ID() string {
	if i.Product != nil && i.Product.ID != "" {
		return i.Product.ID
	}

	return i.ProductID
}

// LineTotal returns the line's contribution to the items price.
func (i CartItem) LineTotal() float64 {
	return i.Product.UnitPrice() * float64(i.Quantity)
}

// Cart is the list of lines shown to the shopper.
type Cart struct {
	Items []CartItem `json:"items"`
}

// GuestLine is the persisted form of a guest cart line.
type GuestLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// GuestCart is the persisted guest cart: {"items":[{"productId":"…","quantity":n}]}.
type GuestCart struct {
	Items []GuestLine `json:"items"`
}

// Find returns the index of the line for productID, or -1.
func (g GuestCart) Find(productID string) int {
	for i, line := range g.Items {
		if line.ProductID == productID {
			return i
		}
	}

	return -1
}

// Pricing holds every derived, engine-owned price field of a cart.
// It is always replaced as a whole so readers never see a partial update.
type Pricing struct {
	ItemsPrice           float64 `json:"itemsPrice"`
	ShippingPrice        float64 `json:"shippingPrice"`
	TotalPrice           float64 `json:"totalPrice"`
	TotalItems           int     `json:"totalItems"`
	Discount             float64 `json:"discount"`
	CouponApplied        bool    `json:"couponApplied"`
	AppliedCouponCode    string  `json:"appliedCouponCode"`
	ReferralApplied      bool    `json:"referralApplied"`
	ReferralCode         string  `json:"referralCode,omitempty"`
	ReferralDiscount     float64 `json:"referralDiscount"`
	FlashDiscount        float64 `json:"flashDiscount"`
	FlashDiscountPercent float64 `json:"flashDiscountPercent"`
}

// WithoutCoupon returns a copy of p with all coupon fields cleared.
func (p Pricing) WithoutCoupon() Pricing {
	p.Discount = 0
	p.CouponApplied = false
	p.AppliedCouponCode = ""

	return p
}

// WithoutReferral returns a copy of p with all referral fields cleared.
func (p Pricing) WithoutReferral() Pricing {
	p.ReferralApplied = false
	p.ReferralCode = ""
	p.ReferralDiscount = 0

	return p
}

// RemoteCart is the authenticated cart as returned by the backend. Its prices are authoritative.
type RemoteCart struct {
	Items                []CartItem      `json:"items"`
	ItemsPrice           float64         `json:"itemsPrice"`
	ShippingPrice        float64         `json:"shippingPrice"`
	TotalPrice           float64         `json:"totalPrice"`
	Coupon               json.RawMessage `json:"coupon,omitempty"` // Coupon reference or object, null when none.
	CouponCode           string          `json:"couponCode,omitempty"`
	Discount             float64         `json:"discount"`
	MinOrderValue        float64         `json:"minOrderValue,omitempty"`
	ReferralCode         string          `json:"referralCode,omitempty"`
	ReferralDiscount     float64         `json:"referralDiscount"`
	FlashDiscount        float64         `json:"flashDiscount"`
	FlashDiscountPercent float64         `json:"flashDiscountPercent"`
}

// HasCoupon reports whether the backend cart references a coupon.
func (c *RemoteCart) HasCoupon() bool {
	if c.CouponCode != "" {
		return true
	}

	raw := bytes.TrimSpace(c.Coupon)
	if len(raw) == 0 {
		return false
	}
	switch string(raw) {
	case "null", "false", `""`, "0":
		return false
	}

	return true
}

// HasReferral reports whether the backend cart carries a referral code.
func (c *RemoteCart) HasReferral() bool {
	return c.ReferralCode != ""
}

// CouponBelowMinimum reports whether the backend kept a discount on a cart whose
// total no longer meets the coupon's minimum order value.
func (c *RemoteCart) CouponBelowMinimum() bool {
	return c.Discount > 0 && c.TotalPrice < c.MinOrderValue
}

// DiscountResult is the backend's answer to a coupon or referral application.
type DiscountResult struct {
	Discount float64 `json:"discount"`
	Message  string  `json:"message,omitempty"`
}

// CartState is the snapshot of the cart engine published to the presentation layer.
type CartState struct {
	Cart            Cart    `json:"cart"`
	Pricing         Pricing `json:"pricing"`
	CartInitialized bool    `json:"cartInitialized"`
	IsLoading       bool    `json:"isLoading"`
	IsUpdating      bool    `json:"isUpdating"`
	CouponError     string  `json:"couponError,omitempty"`
	LastError       string  `json:"lastError,omitempty"`
	BuyNowProductID string  `json:"buyNowProductId,omitempty"`
}

// Clone returns a copy of s that shares no item slice with it.
func (s CartState) Clone() CartState {
	if s.Cart.Items != nil {
		items := make([]CartItem, len(s.Cart.Items))
		copy(items, s.Cart.Items)
		s.Cart.Items = items
	}

	return s
}
