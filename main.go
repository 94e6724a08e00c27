package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/okaydivyansh/ecell-quiz/src/core/auth"
	"github.com/okaydivyansh/ecell-quiz/src/core/config"
	"github.com/okaydivyansh/ecell-quiz/src/core/database"
	"github.com/okaydivyansh/ecell-quiz/src/core/middleware"
	"github.com/okaydivyansh/ecell-quiz/src/core/router"
	"github.com/okaydivyansh/ecell-quiz/src/modules/accounts"
	quizmod "github.com/okaydivyansh/ecell-quiz/src/modules/quizzes"
	scoremod "github.com/okaydivyansh/ecell-quiz/src/modules/scores"
	quizrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/quizzes"
	scorerepo "github.com/okaydivyansh/ecell-quiz/src/repositories/scores"
	userrepo "github.com/okaydivyansh/ecell-quiz/src/repositories/users"
	"github.com/okaydivyansh/ecell-quiz/src/services/ledger"
)

func main() {
	// Initialize the Fiber app
	app := fiber.New()

	// Middleware
	app.Use(recover.New())   // Recover middleware to handle panics
	app.Use(cors.New())      // CORS middleware for cross-origin requests
	app.Use(requestid.New()) // Middleware to generate unique request IDs

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	users := userrepo.NewRepository(db)
	quizzes := quizrepo.NewRepository(db)
	scores := scorerepo.NewRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret)
	board := ledger.New(scores, quizzes, users)

	router.InitialiseAndSetupRoutes(app, router.Deps{
		Accounts:  accounts.NewAPI(users, tokens),
		Quizzes:   quizmod.NewAPI(quizzes, users, board),
		Scores:    scoremod.NewAPI(users, board),
		Protected: middleware.Protected(tokens),
	})

	log.Fatal(app.Listen(fmt.Sprintf(":%s", cfg.AppPort)))
}
