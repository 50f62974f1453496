// Package models defines the data records persisted by the AutoBlog server.
package models

import "time"

// Status is the lifecycle state of a Post. A post starts as StatusDraft and
// moves forward exactly once, to StatusPublished or StatusFailed.
// StatusScheduled is reserved for posts armed for a future publish slot; the
// pipeline does not currently produce it.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished, StatusFailed:
		return true
	}
	return false
}

// Post is one generated piece of content and its publishing outcome.
//
// Invariant: PublishedTime is non-nil exactly when Status is StatusPublished.
// Posts are append-only: once inserted into the ledger they are never mutated.
type Post struct {
	// ID is a globally unique identifier assigned at creation time.
	ID string

	// Title is the first non-blank line of the generated text with leading
	// '#' heading markers stripped, or a default literal if extraction
	// yields nothing.
	Title string

	// Content is the full generated body, unmodified.
	Content string

	// Status is the terminal lifecycle state at insert time.
	Status Status

	// CreatedAt is the generation time in UTC, immutable.
	CreatedAt time.Time

	// PublishedTime is set only on successful publish.
	PublishedTime *time.Time

	// ScheduledTime is reserved for future scheduling use.
	ScheduledTime *time.Time
}

// CountsByStatus aggregates ledger totals for the dashboard header.
type CountsByStatus struct {
	Total     int
	Draft     int
	Scheduled int
	Published int
	Failed    int
}
