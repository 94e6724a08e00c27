package quizzes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okaydivyansh/ecell-quiz/src/core/helpers"
	"github.com/okaydivyansh/ecell-quiz/src/core/middleware"
	"github.com/okaydivyansh/ecell-quiz/src/core/models"
	quizrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/quizzes"
	userrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/users"
	"github.com/okaydivyansh/ecell-quiz/src/services/grading"
	"github.com/okaydivyansh/ecell-quiz/src/services/ledger"
)

type createQuizInput struct {
	Title     string              `json:"title"`
	Questions models.QuestionList `json:"questions"`
}

type takeQuizInput struct {
	Answers []int `json:"answers"`
}

// API exposes the quiz creation, listing and taking handlers.
type API struct {
	quizzes quizrepo.Repository
	users   userrepo.Repository
	board   *ledger.Ledger
}

func NewAPI(quizzes quizrepo.Repository, users userrepo.Repository, board *ledger.Ledger) *API {
	return &API{quizzes: quizzes, users: users, board: board}
}

// Create persists a quiz wholesale. Question payloads are stored exactly as
// submitted; there is no structural validation on titles, options or the
// correct index.
func (a *API) Create(c *fiber.Ctx) error {
	body := new(createQuizInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	quiz := &models.Quiz{
		ID:        uuid.New(),
		Title:     body.Title,
		Questions: body.Questions,
	}
	if err := a.quizzes.Create(c.UserContext(), quiz); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Quiz created successfully", quiz)
}

// List returns every quiz in full, correct answers included, without
// pagination.
func (a *API) List(c *fiber.Ctx) error {
	all, err := a.quizzes.FindAll(c.UserContext())
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Quizzes fetched successfully", all)
}

// Take grades the submitted answers against the quiz and records the result
// for the authenticated user.
func (a *API) Take(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Quiz not found", err)
	}

	body := new(takeQuizInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	quiz, err := a.quizzes.FindByID(c.UserContext(), quizID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	if quiz == nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Quiz not found", nil)
	}

	score := grading.Grade(quiz.Questions, body.Answers)

	user, err := a.users.FindByUsername(c.UserContext(), middleware.Username(c))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	if user == nil {
		// Token verified but the user it names no longer resolves.
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid token", nil)
	}

	if err := a.board.Record(c.UserContext(), user.ID, quiz.ID, score); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz scored successfully", fiber.Map{"score": score})
}
