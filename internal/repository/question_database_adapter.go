package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	selectQuestionColumns = `SELECT id, question, answer, category, difficulty FROM questions`
	getQuestionByIDQuery  = selectQuestionColumns + ` WHERE id = :1`
	nextQuestionIDQuery   = `SELECT questions_seq.NEXTVAL FROM dual`
	insertQuestionQuery   = `INSERT INTO questions (id, question, answer, category, difficulty) VALUES (:1, :2, :3, :4, :5)`
	deleteQuestionQuery   = `DELETE FROM questions WHERE id = :1`
)

type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// FindQuestions returns the questions matching filter. The search term is
// matched as a literal, case-insensitive substring of the question text.
func (r *QuestionDatabaseAdapter) FindQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	query, args := buildFindQuestionsQuery(filter)

	var rows []models.Question
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

func buildFindQuestionsQuery(filter domain.QuestionFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = :%d", len(args)))
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		args = append(args, LikePattern(*filter.SearchTerm))
		conds = append(conds, fmt.Sprintf(`LOWER(question) LIKE :%d ESCAPE '\'`, len(args)))
	}

	var sb strings.Builder
	sb.WriteString(selectQuestionColumns)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	if filter.OrderByText {
		sb.WriteString(" ORDER BY question ASC, id ASC")
	} else {
		sb.WriteString(" ORDER BY id ASC")
	}
	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern lowercases term, escapes LIKE wildcards and wraps it in %...%.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func (r *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, getQuestionByIDQuery, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return toDomainQuestion(&row), nil
}

// SaveQuestion draws the next id from questions_seq and inserts the row.
func (r *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	exec := GetExecutor(ctx, r.db)

	var id int64
	if err := exec.GetContext(ctx, &id, nextQuestionIDQuery); err != nil {
		return fmt.Errorf("allocate question id: %w", err)
	}
	_, err := exec.ExecContext(ctx, insertQuestionQuery,
		id, question.Question, question.Answer, question.Category, question.Difficulty)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	question.ID = id
	return nil
}

func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, deleteQuestionQuery, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return requireRowsAffected(result)
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}
