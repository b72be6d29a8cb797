package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/younifirst/younifirst/internal/app/features/health"
	"github.com/younifirst/younifirst/internal/testutil"
	"go.uber.org/zap"
)

// diagnosticsBody mirrors the /test payload for assertions.
type diagnosticsBody struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func TestServe_NoDatabase(t *testing.T) {
	// The endpoint must succeed even with no backend at all.
	handler := health.NewHandler(nil, nil, zap.NewNop())

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var body diagnosticsBody
	testutil.DecodeJSON(t, rec, &body)

	if body.Backend != "running" {
		t.Errorf("backend: got %q", body.Backend)
	}
	if body.Database != "not available" {
		t.Errorf("database: got %q", body.Database)
	}
	if body.ConnectionStatus != "not connected" {
		t.Errorf("connection_status: got %q", body.ConnectionStatus)
	}
	if body.Collections == nil || len(body.Collections) != 0 {
		t.Errorf("collections: got %v, want empty array", body.Collections)
	}
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), db, zap.NewNop())

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var body diagnosticsBody
	testutil.DecodeJSON(t, rec, &body)

	if body.Database != "connected and working" {
		t.Errorf("database: got %q", body.Database)
	}
	if body.ConnectionStatus != "connected" {
		t.Errorf("connection_status: got %q", body.ConnectionStatus)
	}
	if len(body.Collections) > 10 {
		t.Errorf("collections: got %d names, want at most 10", len(body.Collections))
	}
}
