package service

import (
	"context"
	"math/rand/v2"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// QuizService deals quiz questions. It holds no per-player state; callers send back
// every id they have already seen.
type QuizService interface {
	// NextQuestion returns a uniformly random question that is not in previous, or nil once
	// the pool is exhausted. categoryID domain.QuizCategoryAll draws from every category,
	// any other id restricts the pool to questions tagged categoryType.
	NextQuestion(ctx context.Context, previous []int64, categoryID int64, categoryType string) (*dto.QuestionResponse, error)
}

type quizService struct {
	questions domain.QuestionRepository
	intN      func(n int) int
}

// NewQuizService creates a new instance of quizService
func NewQuizService(questions domain.QuestionRepository) QuizService {
	return newQuizServiceWithRand(questions, rand.IntN)
}

func newQuizServiceWithRand(questions domain.QuestionRepository, intN func(n int) int) *quizService {
	return &quizService{questions: questions, intN: intN}
}

func (s *quizService) NextQuestion(ctx context.Context, previous []int64, categoryID int64, categoryType string) (*dto.QuestionResponse, error) {
	var filter domain.QuestionFilter
	if categoryID != domain.QuizCategoryAll {
		filter.Category = &categoryType
	}

	candidates, err := s.questions.FindQuestions(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz pool", err)
	}

	pool := unseen(candidates, previous)
	if len(pool) == 0 {
		return nil, nil
	}

	resp := dto.NewQuestionResponse(pool[s.intN(len(pool))])
	return &resp, nil
}

func unseen(candidates []*domain.Question, previous []int64) []*domain.Question {
	if len(previous) == 0 {
		return candidates
	}
	seen := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	pool := make([]*domain.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			pool = append(pool, q)
		}
	}
	return pool
}
