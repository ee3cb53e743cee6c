package domain

import "strings"

// Category groups questions. Questions refer to it by Type, not by ID.
type Category struct {
	ID   int64
	Type string
}

// NewCategory creates a new Category instance
func NewCategory(categoryType string) *Category {
	return &Category{Type: categoryType}
}

// SameType reports whether other names the same category ignoring case.
func (c *Category) SameType(other string) bool {
	return strings.EqualFold(c.Type, other)
}

// Question is a quiz item. Category holds a Category.Type value.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   string
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer, category string, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// InCategory reports whether the question is tagged with the given category type.
// The comparison is exact, as in storage.
func (q *Question) InCategory(categoryType string) bool {
	return q.Category == categoryType
}

// QuizCategoryAll is the quiz_category id meaning "every category".
const QuizCategoryAll int64 = 0

// QuestionFilter selects questions from the store. Nil fields do not filter.
type QuestionFilter struct {
	Category   *string
	SearchTerm *string
	// OrderByText sorts by question text ascending; otherwise by id.
	OrderByText bool
}
