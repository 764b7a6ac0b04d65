package bundles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the bundle lookup endpoint on the given router.
func RegisterRoutes(r chi.Router) {
	r.Get("/api/bundles/{handle}", handleComponents)
}

func handleComponents(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	components, ok := Components(handle)
	if !ok {
		http.Error(w, `{"error": "unknown bundle"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"handle":     handle,
		"components": components,
	})
}
