package dto

import "trivia-api/internal/domain"

// CategoryResponse represents a category in the API response
// @Description Category information
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPage is one page of questions plus the context it was selected in.
type QuestionPage struct {
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	// Categories is only filled by the category-context listing.
	Categories      []CategoryResponse `json:"categories,omitempty"`
	CurrentCategory *CategoryResponse  `json:"current_category"`
}

func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

func NewCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = NewCategoryResponse(c)
	}
	return out
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = NewQuestionResponse(q)
	}
	return out
}
