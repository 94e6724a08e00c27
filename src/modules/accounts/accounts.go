package accounts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/okaydivyansh/ecell-quiz/src/core/auth"
	"github.com/okaydivyansh/ecell-quiz/src/core/helpers"
	"github.com/okaydivyansh/ecell-quiz/src/core/models"
	userrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/users"
)

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// API exposes the registration and login handlers.
type API struct {
	users  userrepo.Repository
	tokens *auth.TokenService
}

func NewAPI(users userrepo.Repository, tokens *auth.TokenService) *API {
	return &API{users: users, tokens: tokens}
}

// Register handles user registration. The lookup before the insert is only
// an early exit; the database unique index decides when two registrations
// with the same username race.
func (a *API) Register(c *fiber.Ctx) error {
	body := new(credentials)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Username and password are required", err)
	}

	existing, err := a.users.FindByUsername(c.UserContext(), body.Username)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	if existing != nil {
		return helpers.HandleError(c, fiber.StatusConflict, "Username already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     body.Username,
		PasswordHash: string(hashed),
	}
	if err := a.users.Create(c.UserContext(), user); err != nil {
		if errors.Is(err, userrepo.ErrDuplicateUsername) {
			return helpers.HandleError(c, fiber.StatusConflict, "Username already exists", err)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "User registered successfully", nil)
}

// Login handles user authentication. A missing user and a wrong password
// produce the identical response so usernames cannot be enumerated.
func (a *API) Login(c *fiber.Ctx) error {
	body := new(credentials)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Username and password are required", err)
	}

	user, err := a.users.FindByUsername(c.UserContext(), body.Username)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
	if user == nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid username or password", err)
	}

	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", fiber.Map{"token": token})
}
