// internal/domain/models/lostitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LostItem status values.
const (
	LostItemStatusLost  = "lost"
	LostItemStatusFound = "found"
)

// LostItem is a lost-and-found listing in the "lostitem" collection.
type LostItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Status      string             `bson:"status" json:"status"` // lost | found
	Contact     string             `bson:"contact,omitempty" json:"contact,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
