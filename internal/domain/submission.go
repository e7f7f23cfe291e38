package domain

import (
	"context"
	"time"
)

// Layouts used by the Form sheet's timestamp column
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Submission is one accepted form entry, one row in the Form sheet.
// Rows read back with an unparseable timestamp carry the zero time.
type Submission struct {
	Timestamp    time.Time
	Email        string
	Name         string
	PrayerStatus string
}

// FormRepository defines the interface for the submission log
type FormRepository interface {
	List(ctx context.Context) ([]Submission, error)
	Append(ctx context.Context, submission Submission) error
}
