package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionColumns = []string{"ID", "QUESTION", "ANSWER", "CATEGORY", "DIFFICULTY"}

func strPtr(s string) *string { return &s }

func TestBuildFindQuestionsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.QuestionFilter
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "no filter orders by id",
			filter:    domain.QuestionFilter{},
			wantQuery: selectQuestionColumns + " ORDER BY id ASC",
		},
		{
			name:      "category ordered by text",
			filter:    domain.QuestionFilter{Category: strPtr("Science"), OrderByText: true},
			wantQuery: selectQuestionColumns + " WHERE category = :1 ORDER BY question ASC, id ASC",
			wantArgs:  []interface{}{"Science"},
		},
		{
			name:      "search and category",
			filter:    domain.QuestionFilter{Category: strPtr("Art"), SearchTerm: strPtr("Title")},
			wantQuery: selectQuestionColumns + ` WHERE category = :1 AND LOWER(question) LIKE :2 ESCAPE '\' ORDER BY id ASC`,
			wantArgs:  []interface{}{"Art", "%title%"},
		},
		{
			name:      "empty search term matches everything",
			filter:    domain.QuestionFilter{SearchTerm: strPtr("")},
			wantQuery: selectQuestionColumns + " ORDER BY id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildFindQuestionsQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%100\\% sure%", LikePattern("100% SURE"))
	assert.Equal(t, "%snake\\_case%", LikePattern("snake_case"))
	assert.Equal(t, "%back\\\\slash%", LikePattern("back\\slash"))
}

func TestFindQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionColumns).
		AddRow(5, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", "History", 2).
		AddRow(9, "What boxer's original name is Cassius Clay?", "Muhammad Ali", "History", 1)
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestionColumns + " WHERE category = :1 ORDER BY id ASC")).
		WithArgs("History").
		WillReturnRows(rows)

	result, err := repo.FindQuestions(context.Background(), domain.QuestionFilter{Category: strPtr("History")})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(5), result[0].ID)
	assert.Equal(t, "Muhammad Ali", result[1].Answer)
	assert.Equal(t, 1, result[1].Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindQuestions_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuestionColumns)).WillReturnError(errors.New("connection reset"))

	result, err := repo.FindQuestions(context.Background(), domain.QuestionFilter{})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestGetQuestionByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(getQuestionByIDQuery)).
		WithArgs(int64(1000)).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	result, err := repo.GetQuestionByID(context.Background(), 1000)

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(nextQuestionIDQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"NEXTVAL"}).AddRow(24))
	mock.ExpectExec(regexp.QuoteMeta(insertQuestionQuery)).
		WithArgs(int64(24), "What is the heaviest organ?", "The Liver", "Science", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	q := domain.NewQuestion("What is the heaviest organ?", "The Liver", "Science", 4)
	err := repo.SaveQuestion(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, int64(24), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuestionQuery)).
		WithArgs(int64(24)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteQuestion(context.Background(), 24))
	assert.NoError(t, mock.ExpectationsWereMet())
}
