package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const promptTemplate = `You are a trivia question writer. Write %d new trivia questions for the category "%s".

Do not repeat or rephrase any of these existing questions:
%s

Respond with ONLY a JSON array. Each element must look like:
{"question": "What is the capital of France?", "answer": "Paris", "difficulty": 1}

Rules:
1. Answers are short: a word, a name, or a number.
2. difficulty is an integer from 1 (easy) to 5 (hard).`

// ErrNoJSONArray is returned when the model reply contains no JSON array.
var ErrNoJSONArray = errors.New("no JSON array found in LLM response")

// OllamaQuestionGenerator implements domain.QuestionGenerator on a langchaingo model.
type OllamaQuestionGenerator struct {
	model   llms.Model
	timeout time.Duration
}

// NewOllamaQuestionGenerator connects to the Ollama server named in cfg.
func NewOllamaQuestionGenerator(cfg config.LLMConfig) (domain.QuestionGenerator, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return NewQuestionGenerator(llm, cfg.Timeout), nil
}

func NewQuestionGenerator(model llms.Model, timeout time.Duration) *OllamaQuestionGenerator {
	return &OllamaQuestionGenerator{model: model, timeout: timeout}
}

func (g *OllamaQuestionGenerator) GenerateQuestions(ctx context.Context, categoryType string, existing []string, count int) ([]*domain.GeneratedQuestion, error) {
	if count <= 0 {
		return nil, nil
	}
	l := logger.Get()

	existingList := "(none)"
	if len(existing) > 0 {
		existingList = "- " + strings.Join(existing, "\n- ")
	}
	prompt := fmt.Sprintf(promptTemplate, count, categoryType, existingList)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(0.7))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("LLM request timed out: %w", err)
		}
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}
	l.Debug("Raw LLM response received", zap.String("category", categoryType), zap.String("raw_response", raw))

	generated, err := ParseGeneratedQuestions(raw)
	if err != nil {
		l.Error("Failed to parse LLM response", zap.String("category", categoryType), zap.Error(err))
		return nil, err
	}
	return generated, nil
}

// ParseGeneratedQuestions strips <think> blocks and decodes the outermost JSON array in raw.
func ParseGeneratedQuestions(raw string) ([]*domain.GeneratedQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		return nil, ErrNoJSONArray
	}

	var out []*domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal LLM JSON: %w", err)
	}
	return out, nil
}
