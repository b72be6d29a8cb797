package competitionstore

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
	return &Store{c: db.Collection("competition")}
}

// Create inserts a competition and returns it with its generated ID.
// If CreatedAt is zero, it's set to time.Now().UTC().
func (s *Store) Create(ctx context.Context, comp models.Competition) (models.Competition, error) {
	comp.ID = primitive.NewObjectID()
	if comp.CreatedAt.IsZero() {
		comp.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, comp); err != nil {
		return models.Competition{}, err
	}
	return comp, nil
}

// All returns every competition in store-native order.
func (s *Store) All(ctx context.Context) ([]models.Competition, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Competition{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of competition documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
