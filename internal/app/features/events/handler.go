package events

import (
	"context"
	"net/http"

	eventstore "github.com/younifirst/younifirst/internal/app/store/events"
	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"github.com/younifirst/younifirst/internal/app/system/inputval"
	"github.com/younifirst/younifirst/internal/app/system/normalize"
	"github.com/younifirst/younifirst/internal/app/system/timeouts"
	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves event listing and creation.
// Store is nil when the persistence backend was unreachable at startup.
type Handler struct {
	Store *eventstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	h := &Handler{Log: logger}
	if db != nil {
		h.Store = eventstore.New(db)
	}
	return h
}

// ServeList handles GET /events.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		httpjson.OK(w, []models.Event{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Warn("event list failed", zap.Error(err))
		httpjson.OK(w, []models.Event{})
		return
	}
	httpjson.OK(w, items)
}

// ServeCreate handles POST /events.
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
	date, ok := inputval.ParseTimestamp(req.Date)
	if !ok {
		httpjson.Unprocessable(w, "date must be an RFC 3339 timestamp")
		return
	}

	if h.Store == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ev, err := h.Store.Create(ctx, models.Event{
		Title:       req.Title,
		Description: normalize.Text(req.Description),
		Date:        date,
		Location:    normalize.Text(req.Location),
		Link:        normalize.Text(req.Link),
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "event create failed", err)
		return
	}

	httpjson.OK(w, createResponse{ID: ev.ID.Hex()})
}
