package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

const formRange = "Form!A:D"

// FormRepository implements domain.FormRepository on the Form sheet
type FormRepository struct {
	client *Client
}

// NewFormRepository creates a new FormRepository
func NewFormRepository(client *Client) *FormRepository {
	return &FormRepository{client: client}
}

// List reads the full submission log
func (r *FormRepository) List(ctx context.Context) ([]domain.Submission, error) {
	rows, err := r.client.get(ctx, formRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	submissions := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, submissionFromRow(row))
	}
	return submissions, nil
}

// Append writes one submission as a new row
func (r *FormRepository) Append(ctx context.Context, submission domain.Submission) error {
	row := []interface{}{
		submission.Timestamp.Format(domain.TimestampLayout),
		submission.Email,
		submission.Name,
		submission.PrayerStatus,
	}

	if err := r.client.append(ctx, formRange, row); err != nil {
		return fmt.Errorf("failed to append submission: %w", err)
	}
	return nil
}

// submissionFromRow converts one sheet row. Short rows are padded with
// empty cells and unparseable timestamps become the zero time, so a
// hand-edited row can never abort a read or match a duplicate check.
func submissionFromRow(row []interface{}) domain.Submission {
	cells := make([]string, 4)
	for i := 0; i < len(cells) && i < len(row); i++ {
		cells[i] = cellString(row[i])
	}

	return domain.Submission{
		Timestamp:    parseTimestamp(cells[0]),
		Email:        cells[1],
		Name:         cells[2],
		PrayerStatus: cells[3],
	}
}

func parseTimestamp(value string) time.Time {
	for _, layout := range []string{domain.TimestampLayout, domain.DateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
