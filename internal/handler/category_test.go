package handler_test

import (
	"context"
	"net/http"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome(t *testing.T) {
	app := setupApp(newTestServices(), nil)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1.0", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Welcome User", body["message"])
}

func TestUnknownRouteAndMethod(t *testing.T) {
	app := setupApp(newTestServices(), nil)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1.0/nothing-here", "")
	requireEnvelope(t, status, body, http.StatusNotFound, "resource not found")

	status, body = doRequest(t, app, http.MethodPut, "/api/v1.0/categories", `{"type":"Art"}`)
	requireEnvelope(t, status, body, http.StatusMethodNotAllowed, "method not allowed")

	status, body = doRequest(t, app, http.MethodGet, "/api/v1.0/categories/abc", "")
	requireEnvelope(t, status, body, http.StatusNotFound, "resource not found")
}

func TestListCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svcs := newTestServices()
		svcs.categories.ListCategoriesFunc = func(ctx context.Context) ([]dto.CategoryResponse, error) {
			return []dto.CategoryResponse{{ID: 2, Type: "Art"}, {ID: 1, Type: "Science"}}, nil
		}

		status, body := doRequest(t, setupApp(svcs, nil), http.MethodGet, "/api/v1.0/categories", "")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		categories := body["categories"].([]any)
		require.Len(t, categories, 2)
		assert.Equal(t, "Art", categories[0].(map[string]any)["type"])
	})

	t.Run("Empty", func(t *testing.T) {
		svcs := newTestServices()
		svcs.categories.ListCategoriesFunc = func(ctx context.Context) ([]dto.CategoryResponse, error) {
			return nil, domain.NewNotFoundError("no categories")
		}

		status, body := doRequest(t, setupApp(svcs, nil), http.MethodGet, "/api/v1.0/categories", "")

		requireEnvelope(t, status, body, http.StatusNotFound, "resource not found")
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		svcs := newTestServices()
		svcs.categories.CreateCategoryFunc = func(ctx context.Context, req *dto.CategoryRequest) (*service.CreateCategoryResult, error) {
			require.NotNil(t, req.Type)
			assert.Equal(t, "Geography", *req.Type)
			return &service.CreateCategoryResult{ID: 7, Created: true}, nil
		}

		status, body := doRequest(t, setupApp(svcs, nil), http.MethodPost, "/api/v1.0/categories", `{"type":"Geography"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.EqualValues(t, 7, body["id"])
		assert.NotContains(t, body, "message")
	})

	t.Run("AlreadyExisting", func(t *testing.T) {
		svcs := newTestServices()
		svcs.categories.CreateCategoryFunc = func(ctx context.Context, req *dto.CategoryRequest) (*service.CreateCategoryResult, error) {
			return &service.CreateCategoryResult{ID: 3, Created: false}, nil
		}

		status, body := doRequest(t, setupApp(svcs, nil), http.MethodPost, "/api/v1.0/categories", `{"type":"geography"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 3, body["id"])
		assert.Equal(t, "Already existing category", body["message"])
	})

	t.Run("MissingType", func(t *testing.T) {
		svcs := newTestServices()
		svcs.categories.CreateCategoryFunc = func(ctx context.Context, req *dto.CategoryRequest) (*service.CreateCategoryResult, error) {
			assert.Nil(t, req.Type)
			return nil, domain.NewUnprocessableError("category type is required")
		}

		status, body := doRequest(t, setupApp(svcs, nil), http.MethodPost, "/api/v1.0/categories", `{"name":"Geography"}`)

		requireEnvelope(t, status, body, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("NoBody", func(t *testing.T) {
		status, body := doRequest(t, setupApp(newTestServices(), nil), http.MethodPost, "/api/v1.0/categories", "")
		requireEnvelope(t, status, body, http.StatusBadRequest, "bad request")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		status, body := doRequest(t, setupApp(newTestServices(), nil), http.MethodPost, "/api/v1.0/categories", `{"type":`)
		requireEnvelope(t, status, body, http.StatusBadRequest, "bad request")
	})
}

func TestGetCategory(t *testing.T) {
	svcs := newTestServices()
	svcs.categories.GetCategoryFunc = func(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
		if id == 1 {
			return &dto.CategoryResponse{ID: 1, Type: "Science"}, nil
		}
		return nil, domain.NewCategoryNotFoundError(id)
	}
	app := setupApp(svcs, nil)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1.0/categories/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Science", body["category"].(map[string]any)["type"])

	status, body = doRequest(t, app, http.MethodGet, "/api/v1.0/categories/99", "")
	requireEnvelope(t, status, body, http.StatusNotFound, "resource not found")
}

func TestUpdateCategory(t *testing.T) {
	var got service.CategoryPatch
	svcs := newTestServices()
	svcs.categories.UpdateCategoryFunc = func(ctx context.Context, id int64, patch service.CategoryPatch) (int64, error) {
		got = patch
		if !patch.BodyPresent {
			return 0, domain.NewBadRequestError("request body is required")
		}
		if patch.Type == nil {
			return 0, domain.NewUnprocessableError("category type is required")
		}
		return id, nil
	}
	app := setupApp(svcs, nil)

	t.Run("NoBody", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPatch, "/api/v1.0/categories/4", "")
		requireEnvelope(t, status, body, http.StatusBadRequest, "bad request")
		assert.False(t, got.BodyPresent)
	})

	t.Run("MissingType", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPatch, "/api/v1.0/categories/4", `{}`)
		requireEnvelope(t, status, body, http.StatusUnprocessableEntity, "unprocessable")
		assert.True(t, got.BodyPresent)
	})

	t.Run("Renamed", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPatch, "/api/v1.0/categories/4", `{"type":"Arts"}`)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 4, body["updated"])
		require.NotNil(t, got.Type)
		assert.Equal(t, "Arts", *got.Type)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPatch, "/api/v1.0/categories/4", `not json`)
		requireEnvelope(t, status, body, http.StatusBadRequest, "bad request")
		assert.False(t, got.BodyPresent)
	})
}

func TestDeleteCategory(t *testing.T) {
	svcs := newTestServices()
	svcs.categories.DeleteCategoryFunc = func(ctx context.Context, id int64) (int64, error) {
		if id == 5 {
			return 5, nil
		}
		return 0, domain.NewCategoryNotFoundError(id)
	}
	app := setupApp(svcs, nil)

	status, body := doRequest(t, app, http.MethodDelete, "/api/v1.0/categories/5", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 5, body["deleted"])

	status, body = doRequest(t, app, http.MethodDelete, "/api/v1.0/categories/6", "")
	requireEnvelope(t, status, body, http.StatusNotFound, "resource not found")
}

func TestListCategoryQuestions(t *testing.T) {
	svcs := newTestServices()
	svcs.questions.ListQuestionsByCategoryFunc = func(ctx context.Context, categoryID int64, page int) (*dto.QuestionPage, error) {
		if categoryID != 2 {
			return nil, domain.NewCategoryNotFoundError(categoryID)
		}
		assert.Equal(t, 2, page)
		return &dto.QuestionPage{
			Questions:       []dto.QuestionResponse{{ID: 11, Question: "Q", Answer: "A", Category: "Art", Difficulty: 1}},
			TotalQuestions:  11,
			CurrentCategory: &dto.CategoryResponse{ID: 2, Type: "Art"},
		}, nil
	}
	app := setupApp(svcs, nil)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1.0/categories/2/questions?page=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 11, body["total_questions"])
	assert.Len(t, body["questions"], 1)
	assert.Equal(t, "Art", body["current_category"].(map[string]any)["type"])

	status, body = doRequest(t, app, http.MethodGet, "/api/v1.0/categories/42/questions", "")
	requireEnvelope(t, status, body, http.StatusNotFound, "resource not found")
}

func TestGuardProtectsMutatingRoutes(t *testing.T) {
	svcs := newTestServices()
	svcs.categories.ListCategoriesFunc = func(ctx context.Context) ([]dto.CategoryResponse, error) {
		return []dto.CategoryResponse{{ID: 1, Type: "Science"}}, nil
	}
	deny := func(c *fiber.Ctx) error { return middleware.WriteError(c, http.StatusUnauthorized) }
	app := setupApp(svcs, deny)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/v1.0/categories", `{"type":"Art"}`},
		{http.MethodPatch, "/api/v1.0/categories/1", `{"type":"Art"}`},
		{http.MethodDelete, "/api/v1.0/categories/1", ""},
		{http.MethodPost, "/api/v1.0/questions", `{"searchTerm":"a"}`},
		{http.MethodDelete, "/api/v1.0/questions/1", ""},
	} {
		status, body := doRequest(t, app, tc.method, tc.path, tc.body)
		requireEnvelope(t, status, body, http.StatusUnauthorized, "unauthorized")
	}

	status, _ := doRequest(t, app, http.MethodGet, "/api/v1.0/categories", "")
	assert.Equal(t, http.StatusOK, status)
}
