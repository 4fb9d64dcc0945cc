package impl

import "storefront/internal/domain/entity"

// pricingRules is the client-side pricing policy for lines the backend has not priced.
type pricingRules struct {
	freeShippingThreshold float64
	shippingFee           float64
}

// shippingFor returns the shipping charge for an order of itemsPrice spread over lines.
// An empty order ships for free.
func (r pricingRules) shippingFor(itemsPrice float64, lines int) float64 {
	if lines == 0 || itemsPrice > r.freeShippingThreshold {
		return 0
	}

	return r.shippingFee
}

// reprice recomputes the items price and shipping from items and keeps p's discounts.
func (r pricingRules) reprice(p entity.Pricing, items []entity.CartItem) entity.Pricing {
	p.ItemsPrice = sumItemsPrice(items)
	p.ShippingPrice = r.shippingFor(p.ItemsPrice, len(items))

	return calculateTotals(p, items)
}

// calculateTotals derives totalItems and totalPrice. Coupon and referral
// discounts are mutually exclusive, so at most one of them is non-zero.
func calculateTotals(p entity.Pricing, items []entity.CartItem) entity.Pricing {
	p.TotalItems = sumQuantity(items)
	p.TotalPrice = p.ItemsPrice + p.ShippingPrice - p.Discount - p.ReferralDiscount

	return p
}

// pricingFromRemote adopts the backend's pricing verbatim.
func pricingFromRemote(remote *entity.RemoteCart, items []entity.CartItem) entity.Pricing {
	p := entity.Pricing{
		ItemsPrice:           remote.ItemsPrice,
		ShippingPrice:        remote.ShippingPrice,
		TotalPrice:           remote.TotalPrice,
		TotalItems:           sumQuantity(items),
		FlashDiscount:        remote.FlashDiscount,
		FlashDiscountPercent: remote.FlashDiscountPercent,
	}
	if remote.HasCoupon() {
		p.CouponApplied = true
		p.AppliedCouponCode = remote.CouponCode
		p.Discount = remote.Discount
	}
	if remote.HasReferral() {
		p.ReferralApplied = true
		p.ReferralCode = remote.ReferralCode
		p.ReferralDiscount = remote.ReferralDiscount
	}

	return p
}

func sumItemsPrice(items []entity.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}

	return total
}

func sumQuantity(items []entity.CartItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}

	return total
}

func clampQuantity(quantity, lower, upper int) int {
	return min(max(quantity, lower), upper)
}
