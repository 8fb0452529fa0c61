package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

// RegisterUserHandler creates a user on first sign-in. Registration is
// deduplicated by email: a second call for the same email is a no-op and
// reports that the user already exists. The check and the insert are two
// independent store operations, so concurrent duplicate registrations can
// race; the unique email key is the backstop.
func (h *Handler) RegisterUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	existing, err := h.Store.FindUserByEmail(c.Request.Context(), user.Email)
	if err != nil {
		log.Println("user lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists."})
		return
	}

	result, err := h.Store.InsertUser(c.Request.Context(), user)
	if err != nil {
		log.Println("user insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckAdminHandler reports whether the given email holds the admin role.
// Callers may only ask about themselves; any other email answers false
// without touching the store.
func (h *Handler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")

	if email != DecodedEmail(c) {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}

	user, err := h.Store.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		log.Println("user lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

func (h *Handler) ListUsersHandler(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		log.Println("user list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) DeleteUserHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.Store.DeleteUser(c.Request.Context(), id)
	if err != nil {
		log.Println("user delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PromoteUserHandler grants the admin role to the user with the given id.
func (h *Handler) PromoteUserHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.Store.PromoteUser(c.Request.Context(), id)
	if err != nil {
		log.Println("user promote failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, result)
}
