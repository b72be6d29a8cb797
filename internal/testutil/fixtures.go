package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test documents directly in
// the store, bypassing the HTTP layer.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user document with the given password hash.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, passwordHash string) models.User {
	f.t.Helper()

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("user").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateForumPost inserts a forum post document.
func (f *Fixtures) CreateForumPost(ctx context.Context, title, content, author string) models.ForumPost {
	f.t.Helper()

	post := models.ForumPost{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("forumpost").InsertOne(ctx, post); err != nil {
		f.t.Fatalf("failed to create test forum post: %v", err)
	}
	return post
}

// CreateComment inserts a comment document attached to postID.
func (f *Fixtures) CreateComment(ctx context.Context, postID, content, author string) models.Comment {
	f.t.Helper()

	cm := models.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("comment").InsertOne(ctx, cm); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return cm
}

// CreateEvent inserts an event document.
func (f *Fixtures) CreateEvent(ctx context.Context, title, location string) models.Event {
	f.t.Helper()

	ev := models.Event{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("event").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}
