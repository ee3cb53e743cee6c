package handler

import (
	"github.com/gofiber/fiber/v2"
)

const APIPrefix = "/api/v1.0"

// Handlers groups the route handlers registered by RegisterRoutes.
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
}

// RegisterRoutes mounts the API under APIPrefix. guard, when non-nil, runs before every
// mutating category and question route.
func RegisterRoutes(app *fiber.App, h Handlers, guard fiber.Handler) {
	if guard == nil {
		guard = func(c *fiber.Ctx) error { return c.Next() }
	}

	api := app.Group(APIPrefix)
	api.Get("/", Welcome)

	api.Get("/categories", h.Category.ListCategories)
	api.Post("/categories", guard, h.Category.CreateCategory)
	api.Get("/categories/:id<int>", h.Category.GetCategory)
	api.Patch("/categories/:id<int>", guard, h.Category.UpdateCategory)
	api.Delete("/categories/:id<int>", guard, h.Category.DeleteCategory)
	api.Get("/categories/:id<int>/questions", h.Category.ListCategoryQuestions)

	api.Get("/questions", h.Question.ListQuestions)
	api.Post("/questions", guard, h.Question.CreateOrSearchQuestions)
	api.Get("/questions/:id<int>", h.Question.GetQuestion)
	api.Delete("/questions/:id<int>", guard, h.Question.DeleteQuestion)

	api.Post("/quizzes", h.Quiz.NextQuestion)
}
