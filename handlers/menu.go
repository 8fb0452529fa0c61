package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

type upsertMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Recipe   string  `json:"recipe"`
}

func (h *Handler) ListMenuHandler(c *gin.Context) {
	items, err := h.Store.ListMenu(c.Request.Context())
	if err != nil {
		log.Println("menu list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItemHandler returns the item, or a null body when no document has
// the given id.
func (h *Handler) GetMenuItemHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := h.Store.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		log.Println("menu get failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateMenuItemHandler(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.InsertMenuItem(c.Request.Context(), item)
	if err != nil {
		log.Println("menu insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateMenuItemHandler is an upsert: when no document has the given id, a
// new one is created under that id instead of failing.
func (h *Handler) UpdateMenuItemHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req upsertMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Recipe:   req.Recipe,
	}
	result, err := h.Store.UpsertMenuItem(c.Request.Context(), id, item)
	if err != nil {
		log.Println("menu upsert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteMenuItemHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.Store.DeleteMenuItem(c.Request.Context(), id)
	if err != nil {
		log.Println("menu delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, result)
}
