package handler_test

import (
	"context"

	"trivia-api/internal/dto"
	"trivia-api/internal/service"
)

// --- Manual Mocks ---

type MockCategoryService struct {
	ListCategoriesFunc func(ctx context.Context) ([]dto.CategoryResponse, error)
	GetCategoryFunc    func(ctx context.Context, id int64) (*dto.CategoryResponse, error)
	CreateCategoryFunc func(ctx context.Context, req *dto.CategoryRequest) (*service.CreateCategoryResult, error)
	UpdateCategoryFunc func(ctx context.Context, id int64, patch service.CategoryPatch) (int64, error)
	DeleteCategoryFunc func(ctx context.Context, id int64) (int64, error)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockCategoryService.ListCategoriesFunc not implemented")
}
func (m *MockCategoryService) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(ctx, id)
	}
	panic("MockCategoryService.GetCategoryFunc not implemented")
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*service.CreateCategoryResult, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, req)
	}
	panic("MockCategoryService.CreateCategoryFunc not implemented")
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, id int64, patch service.CategoryPatch) (int64, error) {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, id, patch)
	}
	panic("MockCategoryService.UpdateCategoryFunc not implemented")
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id)
	}
	panic("MockCategoryService.DeleteCategoryFunc not implemented")
}

type MockQuestionService struct {
	ListQuestionsFunc           func(ctx context.Context, page int, currentCategoryID int64) (*dto.QuestionPage, error)
	ListQuestionsByCategoryFunc func(ctx context.Context, categoryID int64, page int) (*dto.QuestionPage, error)
	SearchQuestionsFunc         func(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionPage, error)
	GetQuestionFunc             func(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	CreateQuestionFunc          func(ctx context.Context, req *dto.NewQuestionRequest) (int64, error)
	DeleteQuestionFunc          func(ctx context.Context, id int64) (int64, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int, currentCategoryID int64) (*dto.QuestionPage, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page, currentCategoryID)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionPage, error) {
	if m.ListQuestionsByCategoryFunc != nil {
		return m.ListQuestionsByCategoryFunc(ctx, categoryID, page)
	}
	panic("MockQuestionService.ListQuestionsByCategoryFunc not implemented")
}
func (m *MockQuestionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionPage, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, req, page)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}
func (m *MockQuestionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.NewQuestionRequest) (int64, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, previous []int64, categoryID int64, categoryType string) (*dto.QuestionResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, previous []int64, categoryID int64, categoryType string) (*dto.QuestionResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, previous, categoryID, categoryType)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}
