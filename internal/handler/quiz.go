package handler

import (
	"encoding/json"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler deals quiz questions
type QuizHandler struct {
	quiz service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quiz service.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// NextQuestion godoc
// @Summary Deal the next quiz question
// @Description Returns a random question that is not in previous_questions, or null once none are left. quiz_category.id 0 means all categories.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var fields map[string]json.RawMessage
	if err := decodeBody(c, &fields); err != nil {
		return err
	}

	var req dto.QuizRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return domain.NewError(domain.CodeUnprocessable, "quiz request fields have the wrong type", err)
	}
	if req.PreviousQuestions == nil {
		return domain.NewUnprocessableError("previous_questions is required")
	}
	if req.QuizCategory == nil {
		return domain.NewUnprocessableError("quiz_category is required")
	}
	categoryID, err := parseFlexibleID(req.QuizCategory.ID)
	if err != nil {
		return domain.NewError(domain.CodeUnprocessable, "quiz_category.id is malformed", err)
	}

	question, err := h.quiz.NextQuestion(c.UserContext(), req.PreviousQuestions, categoryID, req.QuizCategory.Type)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponse{Success: true, Question: question})
}
