// Package stats keeps a best-effort log of chat outcomes so the team can
// see which intents fire and how often the assistant gives up.
package stats

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/libertyflags/flaggy/internal/db"
)

// Store persists and aggregates chat events.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record logs one chat turn. It is best-effort by contract: insert
// failures are logged and swallowed so analytics can never break a chat
// response. Satisfies the assistant's EventRecorder.
func (s *Store) Record(ctx context.Context, sessionID, intent, outcome string, confidence float64) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_events (id, session_id, intent, outcome, confidence)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, intent, outcome, confidence,
	)
	if err != nil {
		log.Printf("stats: recording chat event: %v", err)
	}
}

// IntentCount is one row of the intent leaderboard.
type IntentCount struct {
	Intent  string `json:"intent"`
	Outcome string `json:"outcome"`
	Count   int64  `json:"count"`
}

// IntentCounts returns event counts grouped by intent and outcome since
// the given time, most frequent first.
func (s *Store) IntentCounts(ctx context.Context, since time.Time) ([]IntentCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT intent, outcome, COUNT(*)
		FROM chat_events
		WHERE created_at >= ?
		GROUP BY intent, outcome
		ORDER BY COUNT(*) DESC, intent ASC`,
		since.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return nil, fmt.Errorf("querying intent counts: %w", err)
	}
	defer rows.Close()

	var counts []IntentCount
	for rows.Next() {
		var c IntentCount
		if err := rows.Scan(&c.Intent, &c.Outcome, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning intent count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
