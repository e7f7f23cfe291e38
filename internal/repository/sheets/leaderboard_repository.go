package sheets

import (
	"context"
	"fmt"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

const leaderboardRange = "Leaderboard!A:B"

// LeaderboardRepository implements domain.LeaderboardRepository on the
// Leaderboard sheet.
type LeaderboardRepository struct {
	client *Client
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(client *Client) *LeaderboardRepository {
	return &LeaderboardRepository{client: client}
}

// List reads all leaderboard rows in sheet order
func (r *LeaderboardRepository) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := r.client.get(ctx, leaderboardRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entry := domain.LeaderboardEntry{}
		if len(row) > 0 {
			entry.Name = cellString(row[0])
		}
		if len(row) > 1 {
			entry.Points = cellString(row[1])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
