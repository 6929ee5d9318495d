package domain

import "time"

// Order is one order row after cleaning. Raw cells keep whatever the source
// file carried; the derived fields are filled in by the pipeline.
type Order struct {
	ItemID string
	UserID string

	Quantity float64
	Paid     float64

	Timestamp time.Time
	Day       string // YYYY-MM-DD bucket of Timestamp

	// CanonicalUserID is the reconciled identity; equals UserID when the
	// user never matched anyone.
	CanonicalUserID string

	// Author is joined in from the catalog; empty when the join found no row.
	Author string
}
