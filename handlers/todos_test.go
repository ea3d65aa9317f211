package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sinhaamisha5/todo-api/config"
	"github.com/Sinhaamisha5/todo-api/database"
	"github.com/Sinhaamisha5/todo-api/models"
	"github.com/Sinhaamisha5/todo-api/router"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todos.db")
	require.NoError(t, database.Init(path))

	app := fiber.New()
	router.SetupRoutes(app, &config.AppConfig{Port: "5000", DatabasePath: path})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func createTodo(t *testing.T, app *fiber.App, body any) int64 {
	t.Helper()

	status, raw := doRequest(t, app, http.MethodPost, "/api/todos", body)
	require.Equal(t, http.StatusCreated, status)

	var created models.CreateTodoResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &health))
	assert.Equal(t, "healthy", health.Status)

	_, err := time.Parse(time.RFC3339, health.Timestamp)
	assert.NoError(t, err, "timestamp should be ISO-8601")
}

func TestCreateTodo_TitleOnlyGetsDefaults(t *testing.T) {
	app := newTestApp(t)

	id := createTodo(t, app, fiber.Map{"title": "Test"})

	status, raw := doRequest(t, app, http.MethodGet, "/api/todos/1", nil)
	require.Equal(t, http.StatusOK, status)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(raw, &todo))
	assert.Equal(t, id, todo.ID)
	assert.Equal(t, "Test", todo.Title)
	assert.Equal(t, "", todo.Description)
	assert.False(t, todo.Completed)
	assert.False(t, todo.CreatedAt.IsZero())
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []any{nil, fiber.Map{}, fiber.Map{"description": "no title"}} {
		status, raw := doRequest(t, app, http.MethodPost, "/api/todos", body)
		require.Equal(t, http.StatusBadRequest, status)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &errResp))
		assert.Equal(t, "Title is required", errResp.Error)
	}
}

func TestCreateTodo_MalformedBodyTreatedAsEmpty(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTodos_EmptyStore(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)))
}

func TestListTodos_NewestFirst(t *testing.T) {
	app := newTestApp(t)

	for _, title := range []string{"A", "B", "C"} {
		createTodo(t, app, fiber.Map{"title": title})
	}

	status, raw := doRequest(t, app, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, status)

	var todos []models.Todo
	require.NoError(t, json.Unmarshal(raw, &todos))
	require.Len(t, todos, 3)
	assert.Equal(t, "C", todos[0].Title)
	assert.Equal(t, "B", todos[1].Title)
	assert.Equal(t, "A", todos[2].Title)
}

func TestTodoNotFound(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		body   any
	}{
		{http.MethodGet, nil},
		{http.MethodPut, fiber.Map{"title": "ghost"}},
		{http.MethodDelete, nil},
	}

	for _, tc := range cases {
		status, raw := doRequest(t, app, tc.method, "/api/todos/999999", tc.body)
		require.Equal(t, http.StatusNotFound, status, "%s should 404", tc.method)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &errResp))
		assert.Equal(t, "Todo not found", errResp.Error)
	}
}

func TestUpdateTodo_PartialPatchKeepsOtherFields(t *testing.T) {
	app := newTestApp(t)

	createTodo(t, app, fiber.Map{"title": "Groceries", "description": "milk and eggs"})

	status, raw := doRequest(t, app, http.MethodPut, "/api/todos/1", fiber.Map{"completed": true})
	require.Equal(t, http.StatusOK, status)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "Todo updated successfully", msg.Message)

	status, raw = doRequest(t, app, http.MethodGet, "/api/todos/1", nil)
	require.Equal(t, http.StatusOK, status)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(raw, &todo))
	assert.Equal(t, "Groceries", todo.Title)
	assert.Equal(t, "milk and eggs", todo.Description)
	assert.True(t, todo.Completed)
}

func TestUpdateTodo_EmptyBodyIsNoOp(t *testing.T) {
	app := newTestApp(t)

	createTodo(t, app, fiber.Map{"title": "unchanged", "completed": true})

	status, _ := doRequest(t, app, http.MethodPut, "/api/todos/1", nil)
	require.Equal(t, http.StatusOK, status)

	status, raw := doRequest(t, app, http.MethodGet, "/api/todos/1", nil)
	require.Equal(t, http.StatusOK, status)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(raw, &todo))
	assert.Equal(t, "unchanged", todo.Title)
	assert.True(t, todo.Completed)
}

func TestDeleteTodo_SecondDeleteReturnsNotFound(t *testing.T) {
	app := newTestApp(t)

	createTodo(t, app, fiber.Map{"title": "doomed"})

	status, raw := doRequest(t, app, http.MethodDelete, "/api/todos/1", nil)
	require.Equal(t, http.StatusOK, status)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "Todo deleted successfully", msg.Message)

	status, _ = doRequest(t, app, http.MethodGet, "/api/todos/1", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/todos/1", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNonIntegerIDParam(t *testing.T) {
	app := newTestApp(t)

	createTodo(t, app, fiber.Map{"title": "safe"})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		status, _ := doRequest(t, app, method, "/api/todos/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status, "%s with non-integer id", method)
	}

	// the real row is untouched
	status, _ := doRequest(t, app, http.MethodGet, "/api/todos/1", nil)
	assert.Equal(t, http.StatusOK, status)
}
