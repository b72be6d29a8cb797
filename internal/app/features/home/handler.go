package home

import (
	"net/http"

	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler serves the root liveness payload.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /. It answers regardless of backend state so load
// balancers and uptime checks always get a 200.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	httpjson.OK(w, map[string]string{"message": "Younifirst API is running"})
}
