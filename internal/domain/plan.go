package domain

import "time"

// Plan is a stored snapshot of a timeline document. The document bytes are
// opaque to the store; only the snapshot codec interprets them.
type Plan struct {
	ID        string
	Name      string
	Document  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
