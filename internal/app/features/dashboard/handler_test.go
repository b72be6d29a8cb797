package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/younifirst/younifirst/internal/app/features/dashboard"
	"github.com/younifirst/younifirst/internal/testutil"
	"go.uber.org/zap"
)

type summaryBody struct {
	Users        int64 `json:"users"`
	Competitions int64 `json:"competitions"`
	LostItems    int64 `json:"lost_items"`
	Events       int64 `json:"events"`
	Posts        int64 `json:"posts"`
}

func TestServeSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "One", "one@example.com", "hash1")
	fx.CreateUser(ctx, "Two", "two@example.com", "hash2")
	fx.CreateForumPost(ctx, "hello", "first post", "one")
	fx.CreateEvent(ctx, "orientation", "auditorium")

	handler := dashboard.NewHandler(db, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeSummary(rec, httptest.NewRequest("GET", "/dashboard/summary", nil))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var body summaryBody
	testutil.DecodeJSON(t, rec, &body)

	want := summaryBody{Users: 2, Competitions: 0, LostItems: 0, Events: 1, Posts: 1}
	if body != want {
		t.Errorf("summary: got %+v, want %+v", body, want)
	}
}

func TestServeSummary_NoDatabase(t *testing.T) {
	handler := dashboard.NewHandler(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeSummary(rec, httptest.NewRequest("GET", "/dashboard/summary", nil))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var body summaryBody
	testutil.DecodeJSON(t, rec, &body)
	if body != (summaryBody{}) {
		t.Errorf("expected all-zero summary, got %+v", body)
	}
}
