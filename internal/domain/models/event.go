// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a campus event in the "event" collection.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
