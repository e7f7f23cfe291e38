package domain

import "context"

// LeaderboardEntry is one row of the Leaderboard sheet. Points keeps
// the sheet's string encoding; parsing is the renderer's concern.
type LeaderboardEntry struct {
	Name   string
	Points string
}

// LeaderboardRepository defines the interface for leaderboard reads.
// The leaderboard is maintained outside the bot; it is never written.
type LeaderboardRepository interface {
	List(ctx context.Context) ([]LeaderboardEntry, error)
}
