// Package ledger aggregates recorded quiz attempts: per-user score history
// and the global leaderboard.
package ledger

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/okaydivyansh/ecell-quiz/src/core/models"
	quizrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/quizzes"
	scorerepo "github.com/okaydivyansh/ecell-quiz/src/repositories/scores"
	userrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/users"
)

// LeaderboardSize caps the number of leaderboard entries returned.
const LeaderboardSize = 10

// AttemptSummary is one score history row, annotated with the quiz title at
// read time.
type AttemptSummary struct {
	QuizTitle string `json:"quiz_title"`
	Score     int    `json:"score"`
}

// LeaderboardEntry is one ranked row: a user and their best single attempt.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type Ledger struct {
	scores  scorerepo.Repository
	quizzes quizrepo.Repository
	users   userrepo.Repository
}

func New(scores scorerepo.Repository, quizzes quizrepo.Repository, users userrepo.Repository) *Ledger {
	return &Ledger{scores: scores, quizzes: quizzes, users: users}
}

// Record appends a new attempt outcome for the user on the quiz. Repeated
// attempts are never deduplicated.
func (l *Ledger) Record(ctx context.Context, userID, quizID uuid.UUID, value int) error {
	return l.scores.Create(ctx, &models.Score{
		ID:     uuid.New(),
		UserID: userID,
		QuizID: quizID,
		Value:  value,
	})
}

// HistoryFor returns the user's attempts in insertion order, each annotated
// with the referenced quiz's title. Attempts whose quiz no longer resolves
// keep an empty title rather than being dropped.
func (l *Ledger) HistoryFor(ctx context.Context, userID uuid.UUID) ([]AttemptSummary, error) {
	attempts, err := l.scores.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	var quizIDs []uuid.UUID
	for _, attempt := range attempts {
		if !seen[attempt.QuizID] {
			seen[attempt.QuizID] = true
			quizIDs = append(quizIDs, attempt.QuizID)
		}
	}

	quizzes, err := l.quizzes.FindByIDs(ctx, quizIDs)
	if err != nil {
		return nil, err
	}
	titles := make(map[uuid.UUID]string, len(quizzes))
	for _, quiz := range quizzes {
		titles[quiz.ID] = quiz.Title
	}

	history := make([]AttemptSummary, 0, len(attempts))
	for _, attempt := range attempts {
		history = append(history, AttemptSummary{
			QuizTitle: titles[attempt.QuizID],
			Score:     attempt.Value,
		})
	}
	return history, nil
}

// Leaderboard ranks users by their single best recorded score across all
// quizzes, descending, capped at LeaderboardSize. Ties are broken by
// username ascending so the ordering is deterministic.
func (l *Ledger) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	attempts, err := l.scores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	best := make(map[uuid.UUID]int)
	for _, attempt := range attempts {
		if current, ok := best[attempt.UserID]; !ok || attempt.Value > current {
			best[attempt.UserID] = attempt.Value
		}
	}

	userIDs := make([]uuid.UUID, 0, len(best))
	for id := range best {
		userIDs = append(userIDs, id)
	}
	users, err := l.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, LeaderboardEntry{
			Username: user.Username,
			Score:    best[user.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Username < entries[j].Username
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries, nil
}
