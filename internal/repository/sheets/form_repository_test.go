package sheets

import (
	"testing"
	"time"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

func TestSubmissionFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  []interface{}
		want domain.Submission
	}{
		{
			name: "full row",
			row:  []interface{}{"2026-08-29 16:05:00", "a@x.com", "Alice", "Yes"},
			want: domain.Submission{
				Timestamp:    time.Date(2026, 8, 29, 16, 5, 0, 0, time.UTC),
				Email:        "a@x.com",
				Name:         "Alice",
				PrayerStatus: "Yes",
			},
		},
		{
			name: "date-only timestamp still carries its day",
			row:  []interface{}{"2026-08-29", "a@x.com", "Alice", "Yes"},
			want: domain.Submission{
				Timestamp:    time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
				Email:        "a@x.com",
				Name:         "Alice",
				PrayerStatus: "Yes",
			},
		},
		{
			name: "short row padded with empty cells",
			row:  []interface{}{"2026-08-29 16:05:00", "a@x.com"},
			want: domain.Submission{
				Timestamp: time.Date(2026, 8, 29, 16, 5, 0, 0, time.UTC),
				Email:     "a@x.com",
			},
		},
		{
			name: "garbage timestamp becomes zero time",
			row:  []interface{}{"yesterday-ish", "a@x.com", "Alice", "Yes"},
			want: domain.Submission{
				Email:        "a@x.com",
				Name:         "Alice",
				PrayerStatus: "Yes",
			},
		},
		{
			name: "empty row",
			row:  nil,
			want: domain.Submission{},
		},
		{
			name: "non-string cells rendered",
			row:  []interface{}{"2026-08-29 16:05:00", "a@x.com", "Alice", 1.0},
			want: domain.Submission{
				Timestamp:    time.Date(2026, 8, 29, 16, 5, 0, 0, time.UTC),
				Email:        "a@x.com",
				Name:         "Alice",
				PrayerStatus: "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := submissionFromRow(tt.row)
			if !got.Timestamp.Equal(tt.want.Timestamp) {
				t.Fatalf("timestamp = %v, want %v", got.Timestamp, tt.want.Timestamp)
			}
			if got.Email != tt.want.Email || got.Name != tt.want.Name || got.PrayerStatus != tt.want.PrayerStatus {
				t.Fatalf("submission = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestZeroTimestampNeverFormatsAsAToday(t *testing.T) {
	sub := submissionFromRow([]interface{}{"not a date", "a@x.com"})
	if got := sub.Timestamp.Format(domain.DateLayout); got != "0001-01-01" {
		t.Fatalf("zero timestamp formats as %q", got)
	}
}
