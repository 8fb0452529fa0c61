// Package store abstracts the document database behind the API so handlers
// can be wired to MongoDB in production and to an in-memory fake in tests.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

// InsertResult, UpdateResult and DeleteResult mirror the document store's
// write acknowledgements; they are returned to API callers as-is.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// CategoryStat is one group of the order statistics: how many items of a
// menu category were ordered across all payments, and for how much.
type CategoryStat struct {
	Category   string  `bson:"_id" json:"category"`
	Count      int64   `bson:"count" json:"count"`
	TotalPrice float64 `bson:"totalPrice" json:"totalPrice"`
}

// Store is the persistence surface of the API. Lookups that miss return
// (nil, nil) rather than an error; deletes of absent documents succeed with
// a zero DeletedCount.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (*InsertResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
	PromoteUser(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)

	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	InsertMenuItem(ctx context.Context, item models.MenuItem) (*InsertResult, error)
	UpsertMenuItem(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*UpdateResult, error)
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)

	ListReviews(ctx context.Context) ([]models.Review, error)

	ListCartItems(ctx context.Context, email string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, item models.CartItem) (*InsertResult, error)
	DeleteCartItem(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
	DeleteCartItems(ctx context.Context, ids []primitive.ObjectID) (*DeleteResult, error)

	InsertPayment(ctx context.Context, payment models.Payment) (*InsertResult, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)

	// Estimated counts; fast, not exact under concurrent writes.
	CountUsers(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)

	// OrderStats joins every payment's menuItems against the menu and groups
	// by category. Group order is unspecified; categories with no ordered
	// items do not appear.
	OrderStats(ctx context.Context) ([]CategoryStat, error)
}
