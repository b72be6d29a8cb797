package commentstore_test

import (
	"testing"

	commentstore "github.com/younifirst/younifirst/internal/app/store/comments"
	"github.com/younifirst/younifirst/internal/domain/models"
	"github.com/younifirst/younifirst/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_ByPost_FiltersByPostID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	postA := primitive.NewObjectID().Hex()
	postB := primitive.NewObjectID().Hex()

	for _, c := range []models.Comment{
		{PostID: postA, Content: "first on A"},
		{PostID: postB, Content: "only on B"},
		{PostID: postA, Content: "second on A", Author: "sam"},
	} {
		if _, err := store.Create(ctx, c); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	comments, err := store.ByPost(ctx, postA)
	if err != nil {
		t.Fatalf("ByPost failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments for post A, got %d", len(comments))
	}
	for _, cm := range comments {
		if cm.PostID != postA {
			t.Errorf("comment %s has post_id %q, want %q", cm.ID.Hex(), cm.PostID, postA)
		}
	}
}

func TestStore_ByPost_UnknownPostIsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	comments, err := store.ByPost(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("ByPost failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("expected no comments, got %d", len(comments))
	}
	if comments == nil {
		t.Error("expected empty slice, not nil")
	}
}

func TestStore_Create_KeepsOpaquePostID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// PostID is an opaque string; it is not resolved against forumpost.
	created, err := store.Create(ctx, models.Comment{PostID: "not-a-real-post", Content: "hi"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.PostID != "not-a-real-post" {
		t.Errorf("PostID: got %q", created.PostID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}
