package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

const alreadyExistingCategoryMessage = "Already existing category"

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions}
}

// ListCategories godoc
// @Summary List categories
// @Description Returns every category ordered by type
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryListResponse{Success: true, Categories: categories})
}

// CreateCategory godoc
// @Summary Create a category
// @Description Creates a category, or returns the id of an existing one with the same type ignoring case
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.CreatedResponse "category already existed"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	result, err := h.categories.CreateCategory(c.UserContext(), &req)
	if err != nil {
		return err
	}
	if !result.Created {
		return c.JSON(dto.CreatedResponse{Success: true, ID: result.ID, Message: alreadyExistingCategoryMessage})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Success: true, ID: result.ID})
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	category, err := h.categories.GetCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryDetailResponse{Success: true, Category: *category})
}

// UpdateCategory godoc
// @Summary Rename a category
// @Description Questions keep their old category string
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "New type"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	// existence is checked before the body, so an absent or malformed body is left to the service
	var patch service.CategoryPatch
	var req dto.CategoryRequest
	if err := decodeBody(c, &req); err == nil {
		patch = service.CategoryPatch{BodyPresent: true, Type: req.Type}
	}

	updated, err := h.categories.UpdateCategory(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdatedResponse{Success: true, Updated: updated})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	deleted, err := h.categories.DeleteCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Success: true, Deleted: deleted})
}

// ListCategoryQuestions godoc
// @Summary List the questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	page, err := h.questions.ListQuestionsByCategory(c.UserContext(), id, pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionPageResponse{Success: true, QuestionPage: *page})
}
