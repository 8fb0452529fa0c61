package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one completed checkout. CartItems lists the cart entries
// cleared by the checkout; MenuItems lists the purchased dishes and is what
// the order statistics join against the menu collection.
//
// Payments are immutable once written.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	TransactionID string               `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64              `bson:"price" json:"price"`
	Date          time.Time            `bson:"date" json:"date"`
	Quantity      int                  `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	CartItems     []primitive.ObjectID `bson:"cartItems" json:"cartItems"`
	MenuItems     []primitive.ObjectID `bson:"menuItems" json:"menuItems"`
}
