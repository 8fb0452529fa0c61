package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is one dish on the menu. Category is a free-form tag ("pizza",
// "salad", ...) used for grouping in the order statistics.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}
