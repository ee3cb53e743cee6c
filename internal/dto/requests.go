package dto

import "encoding/json"

// CategoryRequest is the body of POST and PATCH on categories.
// @Description Request body for creating or renaming a category
type CategoryRequest struct {
	Type *string `json:"type"`
}

// QuizCategory identifies the category a quiz draws from. ID 0 means all categories.
type QuizCategory struct {
	ID   json.RawMessage `json:"id" swaggertype:"integer"`
	Type string          `json:"type"`
}

// QuizRequest represents the body of POST /quizzes
// @Description Request body for dealing the next quiz question
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// NewQuestionRequest is the create shape of POST /questions.
// @Description Request body for creating a question
type NewQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// SearchQuestionsRequest is the search shape of POST /questions.
// @Description Request body for searching questions
type SearchQuestionsRequest struct {
	SearchTerm        string `json:"searchTerm"`
	CurrentCategoryID *int64 `json:"currentCategoryId,omitempty"`
}
