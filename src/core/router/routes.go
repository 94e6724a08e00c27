package router

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/okaydivyansh/ecell-quiz/src/modules/accounts"
	"github.com/okaydivyansh/ecell-quiz/src/modules/quizzes"
	"github.com/okaydivyansh/ecell-quiz/src/modules/scores"
)

// Deps carries the handler APIs and the auth middleware into route setup.
type Deps struct {
	Accounts  *accounts.API
	Quizzes   *quizzes.API
	Scores    *scores.API
	Protected fiber.Handler
}

func InitialiseAndSetupRoutes(app *fiber.App, deps Deps) {
	root := app.Group("/", logger.New())

	root.Get("/", landing)

	root.Post("/register", deps.Accounts.Register)
	root.Post("/login", deps.Accounts.Login)

	root.Post("/quizzes", deps.Quizzes.Create)
	root.Get("/quizzes", deps.Quizzes.List)
	root.Post("/quizzes/:quizId", deps.Protected, deps.Quizzes.Take)

	root.Get("/scores", deps.Protected, deps.Scores.History)
	root.Get("/leaderboard", deps.Scores.Leaderboard)

	routes := app.GetRoutes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	for _, route := range routes {
		fmt.Printf("%s\t%s\n", route.Method, route.Path)
	}
}

func landing(c *fiber.Ctx) error {
	return c.Type("html").SendString(landingPage)
}

const landingPage = `<!DOCTYPE html>
<html>
  <head><title>Quiz API</title></head>
  <body>
    <h1>Quiz API</h1>
    <p>Register, log in, create quizzes, take them and climb the leaderboard.</p>
  </body>
</html>`
