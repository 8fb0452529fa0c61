package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item placed in a customer's cart, keyed by the
// customer's email. It carries a denormalized copy of the menu item data
// so the cart survives menu edits.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID primitive.ObjectID `bson:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}
