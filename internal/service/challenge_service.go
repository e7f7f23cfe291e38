package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

// SubmitResult is the outcome of a finished form dialogue
type SubmitResult string

const (
	SubmitAccepted  SubmitResult = "accepted"
	SubmitDuplicate SubmitResult = "duplicate"
)

// ChallengeService handles business logic for daily form submissions
// and the leaderboard.
type ChallengeService struct {
	formRepo        domain.FormRepository
	leaderboardRepo domain.LeaderboardRepository
	loc             *time.Location
	now             func() time.Time
}

// NewChallengeService creates a new ChallengeService. The location is
// the challenge's timezone, used for "today" in the duplicate rule and
// for recorded timestamps.
func NewChallengeService(formRepo domain.FormRepository, leaderboardRepo domain.LeaderboardRepository, loc *time.Location) *ChallengeService {
	return &ChallengeService{
		formRepo:        formRepo,
		leaderboardRepo: leaderboardRepo,
		loc:             loc,
		now:             time.Now,
	}
}

// HasSubmittedToday reports whether the submission log already holds a
// record for this email dated today ("2006-01-02"). Rows whose
// timestamp failed to parse carry the zero time and never match.
func HasSubmittedToday(records []domain.Submission, email, today string) bool {
	for _, record := range records {
		if record.Email == email && record.Timestamp.Format(domain.DateLayout) == today {
			return true
		}
	}
	return false
}

// SubmitForm applies the once-per-day rule and records the finished
// form. Exactly one row is appended per accepted submission; a
// duplicate appends nothing.
func (s *ChallengeService) SubmitForm(ctx context.Context, sess *domain.Session, prayerStatus string) (SubmitResult, error) {
	records, err := s.formRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read submission log: %w", err)
	}

	now := s.now().In(s.loc)
	if HasSubmittedToday(records, sess.Email, now.Format(domain.DateLayout)) {
		return SubmitDuplicate, nil
	}

	submission := domain.Submission{
		Timestamp:    now,
		Email:        sess.Email,
		Name:         sess.Name,
		PrayerStatus: prayerStatus,
	}

	if err := s.formRepo.Append(ctx, submission); err != nil {
		return "", fmt.Errorf("failed to save submission: %w", err)
	}

	return SubmitAccepted, nil
}

// Leaderboard reads the leaderboard sheet and renders it for sending
func (s *ChallengeService) Leaderboard(ctx context.Context) (string, error) {
	entries, err := s.leaderboardRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return FormatLeaderboard(entries), nil
}
