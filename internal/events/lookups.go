package events

import "time"

const (
	// LookupsTopic carries notifications about the lookup collection.
	LookupsTopic = "reso.lookups"

	// EventLookupsSeeded identifies a completed seeding batch.
	EventLookupsSeeded = "lookups.seeded"
)

// LookupsSeededEvent tells the RESO server which lookup fields gained values,
// so it can reload its lookup cache.
type LookupsSeededEvent struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	RunID      string    `json:"run_id"`
	Database   string    `json:"database"`
	Fields     []string  `json:"fields"`
	Inserted   int       `json:"inserted"`
}
