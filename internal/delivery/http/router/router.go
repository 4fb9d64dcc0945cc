// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	SessionHandler *handler.SessionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	sessionHandler *handler.SessionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		sessionHandler: params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cart routes. The engine decides per call whether the guest or the backend cart is used.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.GET("/stream", r.cartHandler.Stream)
		cartGroup.POST("/fetch", r.cartHandler.FetchCart)
		cartGroup.POST("/merge", r.cartHandler.MergeGuestCart)

		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)

		cartGroup.POST("/coupon", r.cartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", r.cartHandler.RemoveCoupon)
		cartGroup.POST("/referral", r.cartHandler.ApplyReferral)
		cartGroup.DELETE("/referral", r.cartHandler.RemoveReferral)

		cartGroup.PUT("/buy-now", r.cartHandler.SetBuyNow)
		cartGroup.DELETE("/buy-now", r.cartHandler.ClearBuyNow)
	}

	// Session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/check", r.sessionHandler.CheckAuth)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/otp/send", r.sessionHandler.SendOTP)
		sessionGroup.POST("/otp/verify", r.sessionHandler.VerifyOTP)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)

		sessionGroup.PUT("/profile", r.sessionHandler.UpdateProfile)
		sessionGroup.PUT("/address", r.sessionHandler.UpdateAddress)
		sessionGroup.DELETE("/address/:index", r.sessionHandler.RemoveAddress)
	}
}
