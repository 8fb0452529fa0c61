package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

type createIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// amountInCents converts a decimal price to the processor's minor-unit
// representation. Rounded, not truncated: 19.995 must become 2000.
func amountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeIntents creates payment intents against Stripe. The API key is
// process-wide state set from PAYMENT_SECRET_KEY at startup.
type StripeIntents struct{}

func (StripeIntents) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// CreatePaymentIntentHandler stages a card transaction with the payment
// processor for the posted price and hands the client secret back. Nothing
// is persisted here.
func (h *Handler) CreatePaymentIntentHandler(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.Intents.CreateIntent(c.Request.Context(), amountInCents(req.Price), "usd")
	if err != nil {
		log.Println("payment intent failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPaymentHandler persists a completed payment and clears the cart
// entries it covers. The insert and the delete are two independent store
// operations with no rollback: if the delete fails the payment stays
// recorded and the caller still receives the insert result.
func (h *Handler) RecordPaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	insertResult, err := h.Store.InsertPayment(c.Request.Context(), payment)
	if err != nil {
		log.Println("payment insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	deleteResult, err := h.Store.DeleteCartItems(c.Request.Context(), payment.CartItems)
	if err != nil {
		log.Println("cart cleanup failed after payment insert:", err)
		c.JSON(http.StatusOK, gin.H{"insertResult": insertResult, "deleteResult": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertResult": insertResult, "deleteResult": deleteResult})
}
