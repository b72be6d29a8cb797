package lostitemstore

import (
	"context"
	"errors"
	"time"

	"github.com/younifirst/younifirst/internal/app/system/normalize"
	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lostitem")}
}

// ErrBadStatus is returned when status is neither "lost" nor "found".
var ErrBadStatus = errors.New(`status must be "lost" or "found"`)

// Create inserts a lost-and-found listing. An empty status defaults to
// "lost"; anything other than "lost" or "found" is rejected.
func (s *Store) Create(ctx context.Context, item models.LostItem) (models.LostItem, error) {
	item.ID = primitive.NewObjectID()
	item.Status = normalize.Status(item.Status)
	if item.Status == "" {
		item.Status = models.LostItemStatusLost
	}
	switch item.Status {
	case models.LostItemStatusLost, models.LostItemStatusFound:
		// ok
	default:
		return models.LostItem{}, ErrBadStatus
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return models.LostItem{}, err
	}
	return item, nil
}

// All returns every listing in store-native order.
func (s *Store) All(ctx context.Context) ([]models.LostItem, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.LostItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of lostitem documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
