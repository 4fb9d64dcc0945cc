package impl

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

const (
	msgCouponApplied         = "Coupon applied successfully"
	msgCouponRemoved         = "Coupon removed"
	msgCouponRemoveFailed    = "Failed to remove coupon"
	msgReferralApplied       = "Referral applied successfully"
	msgReferralRemoved       = "Referral removed"
	msgReferralRemoveFailed  = "Failed to remove referral"
	msgLoginToApplyCoupon    = "Please login to apply coupon"
	msgLoginToRemoveCoupon   = "Please login to remove coupon"
	msgLoginToApplyReferral  = "Please login to apply referral"
	msgLoginToRemoveReferral = "Please login to remove referral"
)

// ApplyCoupon applies code to the authenticated cart. It is refused while a referral is active.
func (srv *cartService) ApplyCoupon(ctx context.Context, code string) entity.ActionResult {
	code = strings.TrimSpace(code)
	if code == "" {
		return entity.Failed(domainerrors.ErrCodeRequired.Message())
	}

	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	if !srv.authenticated() {
		return entity.Failed(msgLoginToApplyCoupon)
	}

	current := srv.Snapshot().Pricing
	if current.ReferralApplied {
		return entity.Failed(domainerrors.ErrReferralActive.Message())
	}
	if current.CouponApplied {
		return entity.Failed(domainerrors.ErrCouponAlreadyApplied.Message())
	}

	srv.update(func(st *entity.CartState) {
		st.IsUpdating = true
		st.CouponError = ""
	})
	defer srv.settle()

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	res, err := srv.cartGateway.ApplyCoupon(reqCtx, code)
	if err != nil {
		msg := srv.failureMessage(ctx, err, "apply_coupon", domainerrors.ErrCouponInvalid.Message())
		srv.update(func(st *entity.CartState) { st.CouponError = msg })

		return entity.Failed(msg)
	}

	remote := srv.refetchRemote(ctx)

	// The refetched cart is authoritative; fall back to the application response
	// only when the backend has not reflected the coupon yet. A guest cart never holds one.
	srv.updateIf(func(st *entity.CartState) bool {
		if !remote || st.Pricing.CouponApplied {
			return false
		}
		pricing := st.Pricing
		pricing.CouponApplied = true
		pricing.AppliedCouponCode = code
		pricing.Discount = res.Discount
		st.Pricing = calculateTotals(pricing, st.Cart.Items)

		return true
	})

	if res.Message != "" {
		return entity.Succeeded(res.Message)
	}

	return entity.Succeeded(msgCouponApplied)
}

// RemoveCoupon removes the coupon from the authenticated cart.
func (srv *cartService) RemoveCoupon(ctx context.Context) entity.ActionResult {
	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	if !srv.authenticated() {
		return entity.Failed(msgLoginToRemoveCoupon)
	}

	srv.update(func(st *entity.CartState) {
		st.IsUpdating = true
		st.CouponError = ""
	})
	defer srv.settle()

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	if _, err := srv.cartGateway.RemoveCoupon(reqCtx); err != nil {
		msg := srv.failureMessage(ctx, err, "remove_coupon", msgCouponRemoveFailed)
		srv.update(func(st *entity.CartState) { st.CouponError = msg })

		return entity.Failed(msg)
	}

	srv.refetchRemote(ctx)

	srv.updateIf(func(st *entity.CartState) bool {
		if !st.Pricing.CouponApplied && st.Pricing.Discount == 0 {
			return false
		}
		st.Pricing = calculateTotals(st.Pricing.WithoutCoupon(), st.Cart.Items)

		return true
	})

	return entity.Succeeded(msgCouponRemoved)
}

// ApplyReferral applies a referral code to the authenticated cart. It is refused while a coupon is active.
func (srv *cartService) ApplyReferral(ctx context.Context, code string) entity.ActionResult {
	code = strings.TrimSpace(code)
	if code == "" {
		return entity.Failed(domainerrors.ErrCodeRequired.Message())
	}

	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	if !srv.authenticated() {
		return entity.Failed(msgLoginToApplyReferral)
	}

	current := srv.Snapshot().Pricing
	if current.CouponApplied {
		return entity.Failed(domainerrors.ErrCouponActive.Message())
	}
	if current.ReferralApplied {
		return entity.Failed(domainerrors.ErrReferralAlreadyApplied.Message())
	}

	srv.beginUpdating()
	defer srv.settle()

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	res, err := srv.cartGateway.ApplyReferral(reqCtx, code)
	if err != nil {
		return entity.Failed(srv.failureMessage(ctx, err, "apply_referral", domainerrors.ErrReferralInvalid.Message()))
	}

	remote := srv.refetchRemote(ctx)

	srv.updateIf(func(st *entity.CartState) bool {
		if !remote || st.Pricing.ReferralApplied {
			return false
		}
		pricing := st.Pricing
		pricing.ReferralApplied = true
		pricing.ReferralCode = code
		pricing.ReferralDiscount = res.Discount
		st.Pricing = calculateTotals(pricing, st.Cart.Items)

		return true
	})

	if res.Message != "" {
		return entity.Succeeded(res.Message)
	}

	return entity.Succeeded(msgReferralApplied)
}

// RemoveReferral removes the referral from the authenticated cart.
func (srv *cartService) RemoveReferral(ctx context.Context) entity.ActionResult {
	ctx, ok := srv.acquire(ctx)
	if !ok {
		return entity.Failed(msgCancelled)
	}
	defer srv.opMu.Unlock()

	if !srv.authenticated() {
		return entity.Failed(msgLoginToRemoveReferral)
	}

	srv.beginUpdating()
	defer srv.settle()

	reqCtx, cancel := context.WithTimeout(ctx, srv.settings.requestTimeout)
	defer cancel()

	if err := srv.cartGateway.RemoveReferral(reqCtx); err != nil {
		return entity.Failed(srv.failureMessage(ctx, err, "remove_referral", msgReferralRemoveFailed))
	}

	srv.refetchRemote(ctx)

	srv.updateIf(func(st *entity.CartState) bool {
		if !st.Pricing.ReferralApplied && st.Pricing.ReferralDiscount == 0 {
			return false
		}
		st.Pricing = calculateTotals(st.Pricing.WithoutReferral(), st.Cart.Items)

		return true
	})

	return entity.Succeeded(msgReferralRemoved)
}
