package stats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the stats endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/stats/intents", handleIntents(store))
}

// handleIntents serves GET /api/stats/intents?days=N (default 7).
func handleIntents(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 7
		if v := r.URL.Query().Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, `{"error": "days must be a positive integer"}`, http.StatusBadRequest)
				return
			}
			days = n
		}

		counts, err := store.IntentCounts(r.Context(), time.Now().AddDate(0, 0, -days))
		if err != nil {
			http.Error(w, `{"error": "querying stats failed"}`, http.StatusInternalServerError)
			return
		}
		if counts == nil {
			counts = []IntentCount{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(counts)
	}
}
