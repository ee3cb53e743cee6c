package domain

import (
	"context"
	"time"
)

// CategoryRepository defines the interface for category persistence.
// Lookups return (nil, nil) when nothing matches.
type CategoryRepository interface {
	// ListCategories returns all categories ordered by type ascending
	ListCategories(ctx context.Context) ([]*Category, error)

	GetCategoryByID(ctx context.Context, id int64) (*Category, error)

	// FindCategoryByType matches type case-insensitively
	FindCategoryByType(ctx context.Context, categoryType string) (*Category, error)

	// SaveCategory inserts the category and sets its generated ID
	SaveCategory(ctx context.Context, category *Category) error

	UpdateCategory(ctx context.Context, category *Category) error

	DeleteCategory(ctx context.Context, id int64) error
}

// QuestionRepository defines the interface for question persistence.
type QuestionRepository interface {
	FindQuestions(ctx context.Context, filter QuestionFilter) ([]*Question, error)

	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// SaveQuestion inserts the question and sets its generated ID
	SaveQuestion(ctx context.Context, question *Question) error

	DeleteQuestion(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside one database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for caching operations.
type Cache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites any existing item. An expiration of 0 keeps the item indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete does not fail when the key is absent.
	Delete(ctx context.Context, key string) error

	// Incr atomically increments an integer key, starting from 0 when absent, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)

	Ping(ctx context.Context) error
}

// GeneratedQuestion is a question candidate proposed by a QuestionGenerator.
type GeneratedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// QuestionGenerator proposes new trivia questions for a category.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, categoryType string, existing []string, count int) ([]*GeneratedQuestion, error)
}
