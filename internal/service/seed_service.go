package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"go.uber.org/zap"
)

var ErrEmptyCategoryType = errors.New("seed category has an empty type")

// SeedResult counts the rows a seed run inserted.
type SeedResult struct {
	CategoriesCreated int
	QuestionsCreated  int
}

// SeedService loads initial categories and questions.
type SeedService interface {
	// Seed inserts everything in one transaction. Categories already present (ignoring case)
	// are reused and questions whose text is already filed under the category are skipped,
	// so running it twice is harmless.
	Seed(ctx context.Context, data []dto.SeedCategory) (*SeedResult, error)
}

type seedService struct {
	tx         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	logger     *zap.Logger
}

func NewSeedService(
	tx domain.TransactionManager,
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	logger *zap.Logger,
) SeedService {
	return &seedService{tx: tx, categories: categories, questions: questions, logger: logger}
}

func (s *seedService) Seed(ctx context.Context, data []dto.SeedCategory) (*SeedResult, error) {
	var result SeedResult
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		result = SeedResult{}
		for _, sc := range data {
			if err := s.seedCategory(txCtx, sc, &result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *seedService) seedCategory(ctx context.Context, sc dto.SeedCategory, result *SeedResult) error {
	categoryType := strings.TrimSpace(sc.Type)
	if categoryType == "" {
		return ErrEmptyCategoryType
	}

	category, err := s.categories.FindCategoryByType(ctx, categoryType)
	if err != nil {
		return fmt.Errorf("error checking category %s: %w", categoryType, err)
	}
	if category == nil {
		category = domain.NewCategory(categoryType)
		if err := s.categories.SaveCategory(ctx, category); err != nil {
			return fmt.Errorf("failed to save category %s: %w", categoryType, err)
		}
		result.CategoriesCreated++
		s.logger.Info("Created category", zap.Int64("id", category.ID), zap.String("type", category.Type))
	} else {
		s.logger.Info("Category exists", zap.Int64("id", category.ID), zap.String("type", category.Type))
	}

	existing, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{Category: &category.Type})
	if err != nil {
		return fmt.Errorf("failed to fetch questions of %s: %w", category.Type, err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, q := range existing {
		seen[normalizeQuestionText(q.Question)] = struct{}{}
	}

	for _, sq := range sc.Questions {
		text, answer := strings.TrimSpace(sq.Question), strings.TrimSpace(sq.Answer)
		if text == "" || answer == "" {
			s.logger.Warn("Skipping incomplete seed question", zap.String("category", category.Type))
			continue
		}
		key := normalizeQuestionText(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		q := domain.NewQuestion(text, answer, category.Type, clampDifficulty(sq.Difficulty))
		if err := s.questions.SaveQuestion(ctx, q); err != nil {
			return fmt.Errorf("failed to save question for %s: %w", category.Type, err)
		}
		result.QuestionsCreated++
	}
	return nil
}
