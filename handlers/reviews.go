package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Store.ListReviews(c.Request.Context())
	if err != nil {
		log.Println("review list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
