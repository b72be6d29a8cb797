package forumpoststore

import (
	"context"
	"time"

	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("forumpost")}
}

// Create inserts a forum post and returns it with its generated ID.
// Content is expected to be sanitized by the caller.
func (s *Store) Create(ctx context.Context, post models.ForumPost) (models.ForumPost, error) {
	post.ID = primitive.NewObjectID()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return models.ForumPost{}, err
	}
	return post, nil
}

// All returns every post in store-native order.
func (s *Store) All(ctx context.Context) ([]models.ForumPost, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ForumPost{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of forumpost documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
