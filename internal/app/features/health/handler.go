package health

import (
	"context"
	"net/http"
	"os"

	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"github.com/younifirst/younifirst/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// maxCollectionNames caps the collection listing in the diagnostics payload.
const maxCollectionNames = 10

// Handler holds dependencies needed for the diagnostics endpoint.
// Client and DB may both be nil when the backend was unreachable at startup.
type Handler struct {
	Client *mongo.Client
	DB     *mongo.Database
	Log    *zap.Logger
}

// NewHandler constructs a diagnostics Handler.
func NewHandler(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		DB:     db,
		Log:    logger,
	}
}

// diagnosticsResponse is the JSON structure for GET /test.
type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Serve handles GET /test.
//
// The endpoint must never fail: every backend fault is reduced to a short
// human-readable string in the payload and the response is always 200.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envStatus("YOUNIFIRST_MONGO_URI"),
		DatabaseName:     envStatus("YOUNIFIRST_MONGO_DATABASE"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.Client == nil || h.DB == nil {
		httpjson.OK(w, resp)
		return
	}
	resp.Database = "available"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("diagnostics: mongo ping failed", zap.Error(err))
		resp.Database = "error: " + truncate(err.Error(), 50)
		httpjson.OK(w, resp)
		return
	}
	resp.ConnectionStatus = "connected"

	names, err := h.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		h.Log.Warn("diagnostics: list collections failed", zap.Error(err))
		resp.Database = "connected but error: " + truncate(err.Error(), 50)
		httpjson.OK(w, resp)
		return
	}
	if len(names) > maxCollectionNames {
		names = names[:maxCollectionNames]
	}
	resp.Database = "connected and working"
	resp.Collections = names

	httpjson.OK(w, resp)
}

func envStatus(name string) string {
	if os.Getenv(name) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
