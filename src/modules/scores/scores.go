package scores

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okaydivyansh/ecell-quiz/src/core/helpers"
	"github.com/okaydivyansh/ecell-quiz/src/core/middleware"
	userrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/users"
	"github.com/okaydivyansh/ecell-quiz/src/services/ledger"
)

// API exposes the score history and leaderboard handlers.
type API struct {
	users userrepo.Repository
	board *ledger.Ledger
}

func NewAPI(users userrepo.Repository, board *ledger.Ledger) *API {
	return &API{users: users, board: board}
}

// History returns the authenticated user's attempts, each annotated with
// the quiz title.
func (a *API) History(c *fiber.Ctx) error {
	user, err := a.users.FindByUsername(c.UserContext(), middleware.Username(c))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	if user == nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User not found", nil)
	}

	history, err := a.board.HistoryFor(c.UserContext(), user.ID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Scores fetched successfully", history)
}

// Leaderboard returns the top users by best single attempt.
func (a *API) Leaderboard(c *fiber.Ctx) error {
	entries, err := a.board.Leaderboard(c.UserContext())
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Leaderboard fetched successfully", entries)
}
