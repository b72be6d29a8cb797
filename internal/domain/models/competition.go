// internal/domain/models/competition.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Competition is a listing in the "competition" collection.
// Only Title is required; everything else is optional.
type Competition struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Deadline    *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
