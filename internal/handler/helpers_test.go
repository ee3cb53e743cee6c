package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	categories *MockCategoryService
	questions  *MockQuestionService
	quiz       *MockQuizService
}

func newTestServices() *testServices {
	return &testServices{
		categories: &MockCategoryService{},
		questions:  &MockQuestionService{},
		quiz:       &MockQuizService{},
	}
}

func setupApp(svcs *testServices, guard fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.Handlers{
		Category: handler.NewCategoryHandler(svcs.categories, svcs.questions),
		Question: handler.NewQuestionHandler(svcs.questions),
		Quiz:     handler.NewQuizHandler(svcs.quiz),
	}, guard)
	return app
}

// doRequest sends body (empty for none) and decodes the JSON response into a generic map.
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func requireEnvelope(t *testing.T, status int, body map[string]any, wantStatus int, wantMessage string) {
	t.Helper()
	require.Equal(t, wantStatus, status)
	require.Equal(t, false, body["success"])
	require.EqualValues(t, wantStatus, body["error"])
	require.Equal(t, wantMessage, body["message"])
}
