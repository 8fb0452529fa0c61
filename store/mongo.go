package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

// MongoStore is the production Store backed by MongoDB.
type MongoStore struct {
	users    *mongo.Collection
	menu     *mongo.Collection
	reviews  *mongo.Collection
	carts    *mongo.Collection
	payments *mongo.Collection
}

// NewMongoStore wires a Store onto the named database of an already
// connected client.
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		users:    db.Collection("users"),
		menu:     db.Collection("menu"),
		reviews:  db.Collection("reviews"),
		carts:    db.Collection("carts"),
		payments: db.Collection("payments"),
	}
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) InsertUser(ctx context.Context, user models.User) (*InsertResult, error) {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) DeleteUser(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (s *MongoStore) PromoteUser(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *MongoStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.menu.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MongoStore) InsertMenuItem(ctx context.Context, item models.MenuItem) (*InsertResult, error) {
	res, err := s.menu.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

// UpsertMenuItem replaces the item's editable fields, creating the document
// under the given id when it does not exist.
func (s *MongoStore) UpsertMenuItem(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"price":    item.Price,
		"category": item.Category,
		"recipe":   item.Recipe,
	}}
	res, err := s.menu.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	out := &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
	if res.UpsertedID != nil {
		out.UpsertedID = res.UpsertedID
	}
	return out, nil
}

func (s *MongoStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := s.menu.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (s *MongoStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *MongoStore) ListCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) InsertCartItem(ctx context.Context, item models.CartItem) (*InsertResult, error) {
	res, err := s.carts.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *MongoStore) DeleteCartItem(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := s.carts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (s *MongoStore) DeleteCartItems(ctx context.Context, ids []primitive.ObjectID) (*DeleteResult, error) {
	res, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (s *MongoStore) InsertPayment(ctx context.Context, payment models.Payment) (*InsertResult, error) {
	res, err := s.payments.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *MongoStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *MongoStore) CountUsers(ctx context.Context) (int64, error) {
	return s.users.EstimatedDocumentCount(ctx)
}

func (s *MongoStore) CountMenuItems(ctx context.Context) (int64, error) {
	return s.menu.EstimatedDocumentCount(ctx)
}

func (s *MongoStore) CountPayments(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}

func (s *MongoStore) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "menu",
			"localField":   "menuItems",
			"foreignField": "_id",
			"as":           "menuItemsData",
		}}},
		{{Key: "$unwind", Value: "$menuItemsData"}},
		{{Key: "$group", Value: bson.M{
			"_id":        "$menuItemsData.category",
			"count":      bson.M{"$sum": 1},
			"totalPrice": bson.M{"$sum": "$menuItemsData.price"},
		}}},
	}

	cursor, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	stats := []CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
