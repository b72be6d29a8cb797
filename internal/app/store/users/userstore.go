package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/younifirst/younifirst/internal/app/system/inputval"
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
	return &Store{c: db.Collection("user")}
}

var (
	// ErrDuplicateEmail is returned when creating a user whose email is
	// already registered.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadEmail       = errors.New("invalid email address")
	errNameRequired   = errors.New("name is required")
)

// GetByEmail looks up a user by normalized email.
// Returns mongo.ErrNoDocuments if no user matches.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing and validating fields.
//
// The duplicate-email check is a find-then-insert pre-check, not a unique
// index, so two concurrent registrations for the same email can both
// succeed. That race is accepted behavior.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.Email = normalize.Email(u.Email)
	u.IsActive = true
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	if u.Name == "" {
		return models.User{}, errNameRequired
	}
	if !inputval.IsValidEmail(u.Email) {
		return models.User{}, errBadEmail
	}

	err := s.c.FindOne(ctx, bson.M{"email": u.Email}).Err()
	switch {
	case err == nil:
		return models.User{}, ErrDuplicateEmail
	case !errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, err
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Count returns the number of user documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
