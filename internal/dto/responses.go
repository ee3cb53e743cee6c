package dto

// ErrorResponse is the envelope of every failed request
// @Description Error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is returned by the welcome route
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CategoryListResponse lists every category ordered by type
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}

type CategoryDetailResponse struct {
	Success  bool             `json:"success"`
	Category CategoryResponse `json:"category"`
}

// CreatedResponse carries the id of a new (or, for categories, already existing) record.
type CreatedResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

type UpdatedResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

type DeletedResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type QuestionDetailResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// QuestionPageResponse wraps a QuestionPage in the success envelope
type QuestionPageResponse struct {
	Success bool `json:"success"`
	QuestionPage
}

// QuizResponse carries the dealt question, or null once the pool is exhausted
// @Description Next quiz question
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}
