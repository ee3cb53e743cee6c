package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"go.uber.org/zap"
)

// DefaultCurrentCategoryID is used when the listing request names no category.
const DefaultCurrentCategoryID int64 = 1

// QuestionService defines the interface for question operations
type QuestionService interface {
	// ListQuestions pages through the questions of currentCategoryID, falling back to the
	// alphabetically first category when that id does not resolve.
	ListQuestions(ctx context.Context, page int, currentCategoryID int64) (*dto.QuestionPage, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionPage, error)
	SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionPage, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.NewQuestionRequest) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	catalog    *CategoryCatalog
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(questions domain.QuestionRepository, categories domain.CategoryRepository, catalog *CategoryCatalog) QuestionService {
	return &questionService{questions: questions, categories: categories, catalog: catalog}
}

func (s *questionService) ListQuestions(ctx context.Context, page int, currentCategoryID int64) (*dto.QuestionPage, error) {
	categories, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories")
	}

	current := categories[0]
	for _, c := range categories {
		if c.ID == currentCategoryID {
			current = c
			break
		}
	}

	questions, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{
		Category:    &current.Type,
		OrderByText: true,
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	paged := domain.Paginate(questions, page, domain.QuestionsPerPage)
	if len(questions) == 0 || len(paged) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page")
	}

	currentResp := dto.NewCategoryResponse(current)
	return &dto.QuestionPage{
		Questions:       dto.NewQuestionResponses(paged),
		TotalQuestions:  len(questions),
		Categories:      dto.NewCategoryResponses(categories),
		CurrentCategory: &currentResp,
	}, nil
}

func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionPage, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	questions, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{Category: &category.Type})
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("category has no questions")
	}

	currentResp := dto.NewCategoryResponse(category)
	return &dto.QuestionPage{
		Questions:       dto.NewQuestionResponses(domain.Paginate(questions, page, domain.QuestionsPerPage)),
		TotalQuestions:  len(questions),
		CurrentCategory: &currentResp,
	}, nil
}

// SearchQuestions matches the term as a case-insensitive substring of the question text.
// CurrentCategory stays nil when the search is not scoped to a category.
func (s *questionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionPage, error) {
	filter := domain.QuestionFilter{SearchTerm: &req.SearchTerm}

	var current *dto.CategoryResponse
	if req.CurrentCategoryID != nil {
		category, err := s.categories.GetCategoryByID(ctx, *req.CurrentCategoryID)
		if err != nil {
			return nil, domain.NewInternalError("failed to get category", err)
		}
		if category == nil {
			return nil, domain.NewUnprocessableError("current category does not exist")
		}
		filter.Category = &category.Type
		resp := dto.NewCategoryResponse(category)
		current = &resp
	}

	found, err := s.questions.FindQuestions(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("failed to search questions", err)
	}
	if len(found) == 0 {
		return nil, domain.NewNotFoundError("no questions match the search term")
	}

	return &dto.QuestionPage{
		Questions:       dto.NewQuestionResponses(domain.Paginate(found, page, domain.QuestionsPerPage)),
		TotalQuestions:  len(found),
		CurrentCategory: current,
	}, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	question, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.NewQuestionRequest) (int64, error) {
	// Oracle stores '' as NULL and these columns are NOT NULL
	if req.Question == "" || req.Answer == "" || req.Category == "" {
		return 0, domain.NewUnprocessableError("question, answer and category must not be empty")
	}
	question := domain.NewQuestion(req.Question, req.Answer, req.Category, req.Difficulty)
	if err := s.questions.SaveQuestion(ctx, question); err != nil {
		return 0, domain.NewInternalError("failed to save question", err)
	}
	logger.Get().Info("Question created", zap.Int64("id", question.ID), zap.String("category", question.Category))
	return question.ID, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	if _, err := s.mustGet(ctx, id); err != nil {
		return 0, err
	}
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return 0, domain.NewQuestionNotFoundError(id)
		}
		return 0, domain.NewInternalError("failed to delete question", err)
	}
	return id, nil
}

func (s *questionService) mustGet(ctx context.Context, id int64) (*domain.Question, error) {
	question, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return question, nil
}
