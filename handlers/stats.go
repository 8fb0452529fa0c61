package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminStatsHandler returns platform-wide totals. Counts are the store's
// fast estimates; revenue is an exact sum over all payments.
func (h *Handler) AdminStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.Store.CountUsers(ctx)
	if err != nil {
		log.Println("user count failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	products, err := h.Store.CountMenuItems(ctx)
	if err != nil {
		log.Println("menu count failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	orders, err := h.Store.CountPayments(ctx)
	if err != nil {
		log.Println("payment count failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	payments, err := h.Store.ListPayments(ctx)
	if err != nil {
		log.Println("payment list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	revenue := 0.0
	for _, payment := range payments {
		revenue += payment.Price
	}

	c.JSON(http.StatusOK, gin.H{
		"revenue":  revenue,
		"users":    users,
		"products": products,
		"orders":   orders,
	})
}

// OrderStatsHandler returns the per-category breakdown of ordered items.
// Group order is store-dependent; consumers must treat the result as an
// unordered set.
func (h *Handler) OrderStatsHandler(c *gin.Context) {
	stats, err := h.Store.OrderStats(c.Request.Context())
	if err != nil {
		log.Println("order stats aggregation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred during aggregation"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
