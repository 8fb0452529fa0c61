package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

// ListCartHandler returns the cart for the email in the query string. The
// caller may only read their own cart: a query email that differs from the
// token email is rejected with 403 regardless of what data exists.
func (h *Handler) ListCartHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.CartItem{})
		return
	}

	if email != DecodedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
		return
	}

	items, err := h.Store.ListCartItems(c.Request.Context(), email)
	if err != nil {
		log.Println("cart list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cart"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddCartItemHandler(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.InsertCartItem(c.Request.Context(), item)
	if err != nil {
		log.Println("cart insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteCartItemHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.Store.DeleteCartItem(c.Request.Context(), id)
	if err != nil {
		log.Println("cart delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		return
	}
	c.JSON(http.StatusOK, result)
}
