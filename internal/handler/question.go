package handler

import (
	"encoding/json"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	searchTermField        = "searchTerm"
	currentCategoryIDField = "currentCategoryId"
)

var newQuestionFields = []string{"question", "answer", "category", "difficulty"}

// QuestionHandler handles question HTTP requests
type QuestionHandler struct {
	questions service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(questions service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// ListQuestions godoc
// @Summary List questions of the current category
// @Description Pages through the questions of currCat ordered by text. An unknown currCat falls back to the first category by type.
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param currCat query int false "Current category id" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	currentCategoryID := int64(c.QueryInt("currCat", int(service.DefaultCurrentCategoryID)))
	page, err := h.questions.ListQuestions(c.UserContext(), pageQuery(c), currentCategoryID)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionPageResponse{Success: true, QuestionPage: *page})
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	question, err := h.questions.GetQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionDetailResponse{Success: true, Question: *question})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	deleted, err := h.questions.DeleteQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Success: true, Deleted: deleted})
}

// CreateOrSearchQuestions godoc
// @Summary Create a question, or search questions
// @Description A body carrying searchTerm is a search (dto.SearchQuestionsRequest). Otherwise question, answer, category and difficulty are all required and a question is created.
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number for searches" default(1)
// @Param request body dto.NewQuestionRequest true "New question or search"
// @Success 200 {object} dto.QuestionPageResponse "search results"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *fiber.Ctx) error {
	var fields map[string]json.RawMessage
	if err := decodeBody(c, &fields); err != nil {
		return err
	}

	if _, ok := fields[searchTermField]; ok {
		return h.search(c, fields)
	}
	for _, name := range newQuestionFields {
		if _, ok := fields[name]; !ok {
			return domain.NewUnprocessableError("body is neither a search nor a complete question")
		}
	}
	return h.create(c)
}

func (h *QuestionHandler) search(c *fiber.Ctx, fields map[string]json.RawMessage) error {
	req := dto.SearchQuestionsRequest{}
	if string(fields[searchTermField]) == "null" {
		return domain.NewUnprocessableError("searchTerm must be a string")
	}
	if err := json.Unmarshal(fields[searchTermField], &req.SearchTerm); err != nil {
		return domain.NewError(domain.CodeUnprocessable, "searchTerm must be a string", err)
	}
	if raw, ok := fields[currentCategoryIDField]; ok && string(raw) != "null" {
		id, err := parseFlexibleID(raw)
		if err != nil {
			return domain.NewError(domain.CodeUnprocessable, "currentCategoryId is malformed", err)
		}
		req.CurrentCategoryID = &id
	}

	page, err := h.questions.SearchQuestions(c.UserContext(), &req, pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionPageResponse{Success: true, QuestionPage: *page})
}

func (h *QuestionHandler) create(c *fiber.Ctx) error {
	var req dto.NewQuestionRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		logger.Get().Debug("Rejecting question with mistyped fields", zap.Error(err))
		return domain.NewError(domain.CodeUnprocessable, "question fields have the wrong type", err)
	}

	id, err := h.questions.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Success: true, ID: id})
}
