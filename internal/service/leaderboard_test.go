package service

import (
	"testing"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

func TestFormatLeaderboardSortsByPointsDescending(t *testing.T) {
	got := FormatLeaderboard([]domain.LeaderboardEntry{
		{Name: "Alice", Points: "10"},
		{Name: "Bob", Points: "25"},
	})

	want := "Leaderboard:\nBob: 25 points\nAlice: 10 points\n"
	if got != want {
		t.Fatalf("FormatLeaderboard() = %q, want %q", got, want)
	}
}

func TestFormatLeaderboardEmpty(t *testing.T) {
	if got := FormatLeaderboard(nil); got != NoLeaderboardData {
		t.Fatalf("FormatLeaderboard(nil) = %q, want %q", got, NoLeaderboardData)
	}
}

func TestFormatLeaderboardTiesKeepSheetOrder(t *testing.T) {
	got := FormatLeaderboard([]domain.LeaderboardEntry{
		{Name: "Carol", Points: "15"},
		{Name: "Dave", Points: "15"},
		{Name: "Erin", Points: "40"},
	})

	want := "Leaderboard:\nErin: 40 points\nCarol: 15 points\nDave: 15 points\n"
	if got != want {
		t.Fatalf("FormatLeaderboard() = %q, want %q", got, want)
	}
}

func TestFormatLeaderboardNonNumericPointsSortLast(t *testing.T) {
	got := FormatLeaderboard([]domain.LeaderboardEntry{
		{Name: "Mallory", Points: "n/a"},
		{Name: "Alice", Points: "-3"},
		{Name: "Bob", Points: "7"},
	})

	want := "Leaderboard:\nBob: 7 points\nAlice: -3 points\nMallory: n/a points\n"
	if got != want {
		t.Fatalf("FormatLeaderboard() = %q, want %q", got, want)
	}
}

func TestFormatLeaderboardTrimsPointsBeforeParsing(t *testing.T) {
	got := FormatLeaderboard([]domain.LeaderboardEntry{
		{Name: "Alice", Points: " 5 "},
		{Name: "Bob", Points: "12"},
	})

	want := "Leaderboard:\nBob: 12 points\nAlice:  5  points\n"
	if got != want {
		t.Fatalf("FormatLeaderboard() = %q, want %q", got, want)
	}
}
