// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to a forum post. PostID is the post's ObjectID hex kept
// as an opaque string, matching how clients reference posts.
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID  string             `bson:"post_id" json:"post_id"`
	Content string             `bson:"content" json:"content"`
	Author  string             `bson:"author,omitempty" json:"author,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
