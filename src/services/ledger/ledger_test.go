package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/okaydivyansh/ecell-quiz/src/core/models"
)

// In-memory fakes for the repository interfaces.

type fakeScoreRepo struct {
	mu     sync.Mutex
	scores []models.Score
}

func (f *fakeScoreRepo) Create(ctx context.Context, score *models.Score) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores = append(f.scores, *score)
	return nil
}

func (f *fakeScoreRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Score
	for _, s := range f.scores {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScoreRepo) FindAll(ctx context.Context) ([]models.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Score(nil), f.scores...), nil
}

type fakeQuizRepo struct {
	quizzes []models.Quiz
}

func (f *fakeQuizRepo) Create(ctx context.Context, quiz *models.Quiz) error {
	f.quizzes = append(f.quizzes, *quiz)
	return nil
}

func (f *fakeQuizRepo) FindAll(ctx context.Context) ([]models.Quiz, error) {
	return append([]models.Quiz(nil), f.quizzes...), nil
}

func (f *fakeQuizRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			quiz := q
			return &quiz, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, id := range ids {
		for _, q := range f.quizzes {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		for _, u := range f.users {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func newTestLedger() (*Ledger, *fakeScoreRepo, *fakeQuizRepo, *fakeUserRepo) {
	scores := &fakeScoreRepo{}
	quizzes := &fakeQuizRepo{}
	users := &fakeUserRepo{}
	return New(scores, quizzes, users), scores, quizzes, users
}

func addUser(users *fakeUserRepo, username string) uuid.UUID {
	id := uuid.New()
	users.users = append(users.users, models.User{ID: id, Username: username})
	return id
}

func addQuiz(quizzes *fakeQuizRepo, title string) uuid.UUID {
	id := uuid.New()
	quizzes.quizzes = append(quizzes.quizzes, models.Quiz{ID: id, Title: title})
	return id
}

func TestLeaderboardBestScorePerUser(t *testing.T) {
	board, _, quizzes, users := newTestLedger()
	ctx := context.Background()

	quizID := addQuiz(quizzes, "general knowledge")
	userA := addUser(users, "userA")
	userB := addUser(users, "userB")

	for _, rec := range []struct {
		user  uuid.UUID
		value int
	}{
		{userA, 3},
		{userA, 5},
		{userB, 4},
	} {
		if err := board.Record(ctx, rec.user, quizID, rec.value); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := board.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}

	want := []LeaderboardEntry{
		{Username: "userA", Score: 5},
		{Username: "userB", Score: 4},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestLeaderboardCapsAtTen(t *testing.T) {
	board, _, quizzes, users := newTestLedger()
	ctx := context.Background()

	quizID := addQuiz(quizzes, "big quiz")
	for i := 0; i < 15; i++ {
		userID := addUser(users, fmt.Sprintf("user%02d", i))
		if err := board.Record(ctx, userID, quizID, i); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := board.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != LeaderboardSize {
		t.Fatalf("got %d entries, want %d", len(entries), LeaderboardSize)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Errorf("leaderboard not non-increasing at %d: %d then %d", i, entries[i-1].Score, entries[i].Score)
		}
	}
	if entries[0].Score != 14 {
		t.Errorf("top score = %d, want 14", entries[0].Score)
	}
}

func TestLeaderboardTieBreakByUsername(t *testing.T) {
	board, _, quizzes, users := newTestLedger()
	ctx := context.Background()

	quizID := addQuiz(quizzes, "tied quiz")
	// Insert in reverse alphabetical order to prove the sort does the work.
	for _, name := range []string{"carol", "bob", "alice"} {
		userID := addUser(users, name)
		if err := board.Record(ctx, userID, quizID, 7); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := board.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}

	want := []string{"alice", "bob", "carol"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Username != name {
			t.Errorf("entry %d username = %q, want %q", i, entries[i].Username, name)
		}
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	board, _, _, _ := newTestLedger()

	entries, err := board.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries on empty ledger, want 0", len(entries))
	}
}

func TestHistoryAnnotatesQuizTitles(t *testing.T) {
	board, _, quizzes, users := newTestLedger()
	ctx := context.Background()

	mathID := addQuiz(quizzes, "math")
	scienceID := addQuiz(quizzes, "science")
	userID := addUser(users, "alice")

	for _, rec := range []struct {
		quiz  uuid.UUID
		value int
	}{
		{mathID, 2},
		{scienceID, 3},
		{mathID, 1},
	} {
		if err := board.Record(ctx, userID, rec.quiz, rec.value); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	history, err := board.HistoryFor(ctx, userID)
	if err != nil {
		t.Fatalf("HistoryFor failed: %v", err)
	}

	want := []AttemptSummary{
		{QuizTitle: "math", Score: 2},
		{QuizTitle: "science", Score: 3},
		{QuizTitle: "math", Score: 1},
	}
	if len(history) != len(want) {
		t.Fatalf("got %d rows, want %d", len(history), len(want))
	}
	for i := range want {
		if history[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, history[i], want[i])
		}
	}
}

func TestHistoryKeepsAttemptsWithMissingQuiz(t *testing.T) {
	board, _, _, users := newTestLedger()
	ctx := context.Background()

	userID := addUser(users, "alice")
	if err := board.Record(ctx, userID, uuid.New(), 4); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	history, err := board.HistoryFor(ctx, userID)
	if err != nil {
		t.Fatalf("HistoryFor failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d rows, want 1", len(history))
	}
	if history[0].QuizTitle != "" || history[0].Score != 4 {
		t.Errorf("row = %+v, want empty title and score 4", history[0])
	}
}
