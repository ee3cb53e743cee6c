package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	minDifficulty = 1
	maxDifficulty = 5
	// maxPromptExamples bounds how many existing questions are quoted back to the model.
	maxPromptExamples = 50
)

// BatchService generates new questions for every category with a QuestionGenerator.
type BatchService interface {
	// GenerateNewQuestions returns how many questions were inserted. A failing category
	// is logged and skipped.
	GenerateNewQuestions(ctx context.Context) (int, error)
}

type batchService struct {
	categories  domain.CategoryRepository
	questions   domain.QuestionRepository
	generator   domain.QuestionGenerator
	perCategory int
	concurrency int
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	generator domain.QuestionGenerator,
	cfg config.LLMConfig,
	logger *zap.Logger,
) BatchService {
	perCategory := cfg.QuestionsPerCategory
	if perCategory <= 0 {
		perCategory = 5
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &batchService{
		categories:  categories,
		questions:   questions,
		generator:   generator,
		perCategory: perCategory,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *batchService) GenerateNewQuestions(ctx context.Context) (int, error) {
	start := time.Now()
	s.logger.Info("Starting batch question generation")

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if len(categories) == 0 {
		s.logger.Info("No categories found. Batch process finishing early.")
		return 0, nil
	}

	var inserted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, category := range categories {
		g.Go(func() error {
			n, err := s.generateForCategory(gctx, category)
			if err != nil {
				s.logger.Error("Skipping category after generation failure",
					zap.String("category", category.Type), zap.Error(err))
			}
			inserted.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(inserted.Load()), err
	}
	if err := ctx.Err(); err != nil {
		return int(inserted.Load()), err
	}

	s.logger.Info("Batch question generation finished",
		zap.Int64("inserted", inserted.Load()),
		zap.Duration("elapsed", time.Since(start)))
	return int(inserted.Load()), nil
}

func (s *batchService) generateForCategory(ctx context.Context, category *domain.Category) (int, error) {
	existing, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{Category: &category.Type})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch existing questions: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	examples := make([]string, 0, min(len(existing), maxPromptExamples))
	for _, q := range existing {
		seen[normalizeQuestionText(q.Question)] = struct{}{}
		if len(examples) < maxPromptExamples {
			examples = append(examples, q.Question)
		}
	}

	generated, err := s.generator.GenerateQuestions(ctx, category.Type, examples, s.perCategory)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, g := range generated {
		if g == nil || strings.TrimSpace(g.Question) == "" || strings.TrimSpace(g.Answer) == "" {
			s.logger.Warn("Dropping incomplete generated question", zap.String("category", category.Type))
			continue
		}
		key := normalizeQuestionText(g.Question)
		if _, dup := seen[key]; dup {
			s.logger.Debug("Dropping duplicate generated question", zap.String("question", g.Question))
			continue
		}
		seen[key] = struct{}{}

		q := domain.NewQuestion(strings.TrimSpace(g.Question), strings.TrimSpace(g.Answer), category.Type, clampDifficulty(g.Difficulty))
		if err := s.questions.SaveQuestion(ctx, q); err != nil {
			return inserted, fmt.Errorf("failed to save generated question: %w", err)
		}
		inserted++
	}

	s.logger.Info("Generated questions for category",
		zap.String("category", category.Type),
		zap.Int("proposed", len(generated)),
		zap.Int("inserted", inserted))
	return inserted, nil
}

func normalizeQuestionText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func clampDifficulty(d int) int {
	return max(minDifficulty, min(d, maxDifficulty))
}
