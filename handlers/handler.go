package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/store"
)

// PaymentIntenter creates a staged transaction with the payment processor
// and returns its client secret. Satisfied by StripeIntents in production
// and by fakes in tests.
type PaymentIntenter interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// Handler is the HTTP layer. It owns no state beyond the injected store and
// payment processor client.
type Handler struct {
	Store   store.Store
	Intents PaymentIntenter
}

func NewHandler(s store.Store, intents PaymentIntenter) *Handler {
	return &Handler{Store: s, Intents: intents}
}

// RegisterRoutes wires every route onto the router. Gating per route:
// public reads stay open, mutating menu/user operations require an admin
// token, cart reads require the caller's own email.
func (h *Handler) RegisterRoutes(router *gin.Engine) {

	router.GET("/", h.HealthHandler)
	router.POST("/jwt", h.IssueTokenHandler)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", h.RegisterUserHandler)
		userRoutes.GET("", RequireToken(), h.RequireAdmin(), h.ListUsersHandler)
		userRoutes.DELETE("/:id", RequireToken(), h.RequireAdmin(), h.DeleteUserHandler)
		userRoutes.GET("/admin/:email", RequireToken(), h.CheckAdminHandler)
		userRoutes.PATCH("/admin/:id", RequireToken(), h.RequireAdmin(), h.PromoteUserHandler)
	}

	router.GET("/menu", h.ListMenuHandler)
	router.POST("/menu", RequireToken(), h.RequireAdmin(), h.CreateMenuItemHandler)
	router.DELETE("/menu/:id", RequireToken(), h.RequireAdmin(), h.DeleteMenuItemHandler)
	router.GET("/dashboard/update-menu/:id", h.GetMenuItemHandler)
	router.PUT("/dashboard/update-menu/:id", RequireToken(), h.RequireAdmin(), h.UpdateMenuItemHandler)

	router.GET("/reviews", h.ListReviewsHandler)

	cartRoutes := router.Group("/carts")
	{
		cartRoutes.GET("", RequireToken(), h.ListCartHandler)
		cartRoutes.POST("", h.AddCartItemHandler)
		cartRoutes.DELETE("/:id", h.DeleteCartItemHandler)
	}

	router.POST("/create-payment-intent", RequireToken(), h.CreatePaymentIntentHandler)
	router.POST("/payments", RequireToken(), h.RecordPaymentHandler)

	router.GET("/admin-stats", RequireToken(), h.RequireAdmin(), h.AdminStatsHandler)
	router.GET("/order-stats", h.OrderStatsHandler)
}

func (h *Handler) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "server is running")
}
