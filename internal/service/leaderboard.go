package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

// NoLeaderboardData is sent when the leaderboard sheet has no rows
const NoLeaderboardData = "No data available in the leaderboard."

// FormatLeaderboard renders entries sorted by points, highest first.
// Ties keep their sheet order. Entries whose points cell is not an
// integer sort below every numeric entry; the cell text is rendered
// as-is either way.
func FormatLeaderboard(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return NoLeaderboardData
	}

	sorted := make([]domain.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pointsValue(sorted[i].Points) > pointsValue(sorted[j].Points)
	})

	var b strings.Builder
	b.WriteString("Leaderboard:\n")
	for _, entry := range sorted {
		fmt.Fprintf(&b, "%s: %s points\n", entry.Name, entry.Points)
	}
	return b.String()
}

func pointsValue(points string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(points), 10, 64)
	if err != nil {
		return math.MinInt64
	}
	return v
}
