package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/utils"
)

// decodedEmailKey is the gin context key carrying the verified token email.
const decodedEmailKey = "decoded_email"

type issueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// IssueTokenHandler signs a one-hour session token for the posted identity.
func (h *Handler) IssueTokenHandler(c *gin.Context) {
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(req.Email)
	if err != nil {
		log.Println("failed to sign token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RequireToken verifies the bearer token and attaches the verified email to
// the request context. Requests without a valid token are rejected with 401.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		// "Bearer <token>"
		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		c.Set(decodedEmailKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin rejects callers whose stored user record does not hold the
// admin role. Must be composed after RequireToken; without a verified email
// on the context every caller is rejected.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := DecodedEmail(c)

		user, err := h.Store.FindUserByEmail(c.Request.Context(), email)
		if err != nil {
			log.Println("admin lookup failed:", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}

		c.Next()
	}
}

// DecodedEmail returns the verified email attached by RequireToken, or ""
// when the request never passed token verification.
func DecodedEmail(c *gin.Context) string {
	value, _ := c.Get(decodedEmailKey)
	email, _ := value.(string)
	return email
}
