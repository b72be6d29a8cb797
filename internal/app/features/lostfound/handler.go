package lostfound

import (
	"context"
	"errors"
	"net/http"

	lostitemstore "github.com/younifirst/younifirst/internal/app/store/lostitems"
	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"github.com/younifirst/younifirst/internal/app/system/normalize"
	"github.com/younifirst/younifirst/internal/app/system/timeouts"
	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves lost-and-found listing and creation.
// Store is nil when the persistence backend was unreachable at startup.
type Handler struct {
	Store *lostitemstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	h := &Handler{Log: logger}
	if db != nil {
		h.Store = lostitemstore.New(db)
	}
	return h
}

// ServeList handles GET /lostfound.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		httpjson.OK(w, []models.LostItem{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Warn("lostitem list failed", zap.Error(err))
		httpjson.OK(w, []models.LostItem{})
		return
	}
	httpjson.OK(w, items)
}

// ServeCreate handles POST /lostfound.
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

	if h.Store == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Store.Create(ctx, models.LostItem{
		Title:       req.Title,
		Description: normalize.Text(req.Description),
		Location:    normalize.Text(req.Location),
		Status:      req.Status,
		Contact:     normalize.Text(req.Contact),
	})
	if err != nil {
		if errors.Is(err, lostitemstore.ErrBadStatus) {
			httpjson.Unprocessable(w, err.Error())
			return
		}
		httpjson.Internal(w, h.Log, "lostitem create failed", err)
		return
	}

	httpjson.OK(w, createResponse{ID: item.ID.Hex()})
}
