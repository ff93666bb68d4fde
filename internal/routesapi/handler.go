package routesapi

import (
	"encoding/json"
	"net/http"

	"github.com/bustimel/routebot/internal/engine"
)

// Handler serves route data directly, without the conversational layer.
type Handler struct {
	engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// ListRoutes — GET /routes: весь каталог як є.
func (h *Handler) ListRoutes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Catalog())
}

// SearchRoute — GET /routes/search?from=X&to=Y. Fuzzy, same matching and
// thresholds as the chat pipeline.
func (h *Handler) SearchRoute(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from and to are required"})
		return
	}

	route := h.engine.Lookup(from, to)
	if route == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "route not found"})
		return
	}
	writeJSON(w, http.StatusOK, route)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
