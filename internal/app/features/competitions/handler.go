package competitions

import (
	"context"
	"net/http"

	competitionstore "github.com/younifirst/younifirst/internal/app/store/competitions"
	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"github.com/younifirst/younifirst/internal/app/system/inputval"
	"github.com/younifirst/younifirst/internal/app/system/normalize"
	"github.com/younifirst/younifirst/internal/app/system/timeouts"
	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves competition listing and creation.
// Store is nil when the persistence backend was unreachable at startup.
type Handler struct {
	Store *competitionstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	h := &Handler{Log: logger}
	if db != nil {
		h.Store = competitionstore.New(db)
	}
	return h
}

// ServeList handles GET /competitions. When the store is unavailable the
// listing degrades to an empty array instead of failing.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		httpjson.OK(w, []models.Competition{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Warn("competition list failed", zap.Error(err))
		httpjson.OK(w, []models.Competition{})
		return
	}
	httpjson.OK(w, items)
}

// ServeCreate handles POST /competitions.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Unprocessable(w, err.Error())
		return
	}

	req.Title = normalize.Text(req.Title)
	if req.Title == "" {
		httpjson.Unprocessable(w, "title is required")
		return
	}
	deadline, ok := inputval.ParseTimestamp(req.Deadline)
	if !ok {
		httpjson.Unprocessable(w, "deadline must be an RFC 3339 timestamp")
		return
	}

	if h.Store == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	comp, err := h.Store.Create(ctx, models.Competition{
		Title:       req.Title,
		Description: normalize.Text(req.Description),
		Category:    normalize.Text(req.Category),
		Deadline:    deadline,
		Link:        normalize.Text(req.Link),
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "competition create failed", err)
		return
	}

	httpjson.OK(w, createResponse{ID: comp.ID.Hex()})
}
