package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/spatial-todo/database"
	"github.com/jalexanderII/spatial-todo/handlers"
	"github.com/jalexanderII/spatial-todo/models"
	"github.com/jalexanderII/spatial-todo/router"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setup(store database.ToDoStore) *fiber.App {
	l := logrus.New()
	l.SetOutput(io.Discard)
	app := fiber.New()
	router.SetupRoutes(app, handlers.NewHandler(store, l))
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func listAll(t *testing.T, app *fiber.App) []models.ToDo {
	t.Helper()
	status, data := do(t, app, http.MethodGet, "/showAllToDos", nil)
	require.Equal(t, http.StatusOK, status)
	resp := decode[handlers.AllToDosResponse](t, data)
	require.Equal(t, "Successfully Fetched", resp.Message)
	return resp.AllToDos
}

func add(t *testing.T, app *fiber.App, body any) *models.ToDo {
	t.Helper()
	status, data := do(t, app, http.MethodPost, "/addToDo", body)
	require.Equal(t, http.StatusOK, status, string(data))
	resp := decode[handlers.ToDoResponse](t, data)
	require.Equal(t, "Sucessfully Added", resp.Message)
	require.NotNil(t, resp.ToDo)
	return resp.ToDo
}

func TestRoot(t *testing.T) {
	app := setup(database.NewMemoryStore())
	status, data := do(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "My API", string(data))
}

func TestHealth(t *testing.T) {
	status, data := do(t, setup(database.NewMemoryStore()), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(data))

	status, data = do(t, setup(failingStore{}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Document store unreachable", string(data))
}

func TestAddMarkDoneList(t *testing.T) {
	app := setup(database.NewMemoryStore())

	todo := add(t, app, map[string]any{
		"title":       "Buy milk",
		"description": "2%",
		"isDone":      false,
		"x":           10,
		"y":           20,
	})
	assert.Equal(t, "Buy milk", *todo.Title)
	require.NotNil(t, todo.GetID())

	status, data := do(t, app, http.MethodPost, "/markdone/"+todo.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Marked true"}`, string(data))

	todos := listAll(t, app)
	require.Len(t, todos, 1)
	assert.Equal(t, todo.ID, todos[0].ID)
	assert.True(t, todos[0].Done())
	assert.Equal(t, "2%", *todos[0].Description)
	assert.Equal(t, 10.0, *todos[0].X)
	assert.Equal(t, 20.0, *todos[0].Y)
}

func TestMarkUndone(t *testing.T) {
	app := setup(database.NewMemoryStore())
	todo := add(t, app, map[string]any{"title": "t"})

	do(t, app, http.MethodPost, "/markdone/"+todo.ID.Hex(), nil)
	status, data := do(t, app, http.MethodPost, "/markundone/"+todo.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Marked false"}`, string(data))

	todos := listAll(t, app)
	require.NotNil(t, todos[0].IsDone)
	assert.False(t, *todos[0].IsDone)
}

func TestMarkDoneMissingID(t *testing.T) {
	app := setup(database.NewMemoryStore())
	status, data := do(t, app, http.MethodPost, "/markdone/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Marked true"}`, string(data))
}

func TestAddWithoutBody(t *testing.T) {
	app := setup(database.NewMemoryStore())
	todo := add(t, app, nil)
	assert.Nil(t, todo.Title)
	assert.Nil(t, todo.IsDone)

	status, data := do(t, app, http.MethodGet, "/showAllToDos", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Fetched","allToDos":[{"id":"`+todo.ID.Hex()+`"}]}`, string(data))
}

func TestAddFormBody(t *testing.T) {
	app := setup(database.NewMemoryStore())
	req := httptest.NewRequest(http.MethodPost, "/addToDo", strings.NewReader("title=Walk&x=1.5"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	todos := listAll(t, app)
	require.Len(t, todos, 1)
	assert.Equal(t, "Walk", *todos[0].Title)
	assert.Equal(t, 1.5, *todos[0].X)
}

func TestAddWrongType(t *testing.T) {
	app := setup(database.NewMemoryStore())
	status, data := do(t, app, http.MethodPost, "/addToDo", map[string]any{"isDone": "yes"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "An error occurred while adding the toDo.", string(data))
	assert.Len(t, listAll(t, app), 0)
}

func TestDelete(t *testing.T) {
	app := setup(database.NewMemoryStore())
	keep := add(t, app, map[string]any{"title": "keep"})
	gone := add(t, app, map[string]any{"title": "gone"})

	for i := 0; i < 2; i++ {
		status, data := do(t, app, http.MethodPost, "/delete/"+gone.ID.Hex(), nil)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"message":"Successfully Deleted"}`, string(data))
	}

	todos := listAll(t, app)
	require.Len(t, todos, 1)
	assert.Equal(t, keep.ID, todos[0].ID)
}

func TestDeleteNonexistent(t *testing.T) {
	app := setup(database.NewMemoryStore())
	status, data := do(t, app, http.MethodPost, "/delete/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Deleted"}`, string(data))
}

func TestDeleteMalformedID(t *testing.T) {
	app := setup(database.NewMemoryStore())
	status, data := do(t, app, http.MethodPost, "/delete/not-an-id", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "An error occurred while deleting the toDo.", string(data))
}

func TestUpdateContent(t *testing.T) {
	app := setup(database.NewMemoryStore())
	todo := add(t, app, map[string]any{"title": "a", "description": "b", "x": 3, "y": 4})

	status, data := do(t, app, http.MethodPost, "/update/"+todo.ID.Hex(), map[string]any{
		"title":       "A",
		"description": "B",
		"isDone":      true,
	})
	require.Equal(t, http.StatusOK, status)
	resp := decode[handlers.ToDoResponse](t, data)
	assert.Equal(t, "Successfully Updated", resp.Message)
	require.NotNil(t, resp.ToDo)
	assert.Equal(t, "A", *resp.ToDo.Title)
	assert.Equal(t, "B", *resp.ToDo.Description)
	assert.True(t, resp.ToDo.Done())
	assert.Equal(t, 3.0, *resp.ToDo.X)
	assert.Equal(t, 4.0, *resp.ToDo.Y)
}

func TestUpdatePosition(t *testing.T) {
	app := setup(database.NewMemoryStore())
	todo := add(t, app, map[string]any{"title": "a", "description": "b", "isDone": true, "x": 3, "y": 4})

	status, data := do(t, app, http.MethodPost, "/updatePosition/"+todo.ID.Hex(), map[string]any{"x": -1, "y": 250.5})
	require.Equal(t, http.StatusOK, status)
	resp := decode[handlers.ToDoResponse](t, data)
	assert.Equal(t, "Successfully Updated", resp.Message)
	require.NotNil(t, resp.ToDo)
	assert.Equal(t, -1.0, *resp.ToDo.X)
	assert.Equal(t, 250.5, *resp.ToDo.Y)
	assert.Equal(t, "a", *resp.ToDo.Title)
	assert.Equal(t, "b", *resp.ToDo.Description)
	assert.True(t, resp.ToDo.Done())
}

func TestUpdatesOnMissingIDReturnNull(t *testing.T) {
	app := setup(database.NewMemoryStore())
	id := primitive.NewObjectID().Hex()

	status, data := do(t, app, http.MethodPost, "/update/"+id, map[string]any{"title": "x"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Updated","toDo":null}`, string(data))

	status, data = do(t, app, http.MethodPost, "/updatePosition/"+id, map[string]any{"x": 1})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Successfully Updated","toDo":null}`, string(data))
}

func TestStoreFailures(t *testing.T) {
	app := setup(failingStore{})
	id := primitive.NewObjectID().Hex()

	tests := []struct {
		method, path string
		body         any
		want         string
	}{
		{http.MethodGet, "/showAllToDos", nil, "An error occurred while fetching all the ToDos."},
		{http.MethodPost, "/addToDo", map[string]any{"title": "t"}, "An error occurred while adding the toDo."},
		{http.MethodPost, "/delete/" + id, nil, "An error occurred while deleting the toDo."},
		{http.MethodPost, "/markdone/" + id, nil, "An error occurred while updating the toDo."},
		{http.MethodPost, "/markundone/" + id, nil, "An error occurred while updating the toDo."},
		{http.MethodPost, "/update/" + id, map[string]any{"title": "t"}, "An error occurred while updating the toDo."},
		{http.MethodPost, "/updatePosition/" + id, map[string]any{"x": 1}, "An error occurred while updating the toDo's position."},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, data := do(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.Equal(t, tt.want, string(data))
			assert.NotContains(t, string(data), database.ErrStoreUnavailable.Error())
		})
	}
}

// failingStore answers every call as if the document store were down.
type failingStore struct{}

func (failingStore) List(context.Context) ([]models.ToDo, error) {
	return nil, database.ErrStoreUnavailable
}

func (failingStore) Create(context.Context, models.ToDo) (*models.ToDo, error) {
	return nil, database.ErrStoreUnavailable
}

func (failingStore) Delete(context.Context, string) error {
	return database.ErrStoreUnavailable
}

func (failingStore) SetDone(context.Context, string, bool) error {
	return database.ErrStoreUnavailable
}

func (failingStore) UpdateContent(context.Context, string, models.ContentUpdate) (*models.ToDo, error) {
	return nil, database.ErrStoreUnavailable
}

func (failingStore) UpdatePosition(context.Context, string, models.PositionUpdate) (*models.ToDo, error) {
	return nil, database.ErrStoreUnavailable
}

func (failingStore) Ping(context.Context) error {
	return database.ErrStoreUnavailable
}

func (failingStore) Close(context.Context) error {
	return nil
}

func TestAddUnsupportedContentType(t *testing.T) {
	app := setup(database.NewMemoryStore())

	send := func(path, contentType string) (int, []byte) {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("hello"))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, data
	}

	status, data := send("/addToDo", "text/plain")
	require.Equal(t, http.StatusOK, status, string(data))
	created := decode[handlers.ToDoResponse](t, data)
	require.NotNil(t, created.ToDo)
	assert.Nil(t, created.ToDo.Title)

	status, data = send("/addToDo", "")
	require.Equal(t, http.StatusOK, status, string(data))

	todo := add(t, app, map[string]any{"title": "a", "x": 1})
	status, data = send("/update/"+todo.ID.Hex(), "text/plain")
	require.Equal(t, http.StatusOK, status, string(data))
	updated := decode[handlers.ToDoResponse](t, data)
	require.NotNil(t, updated.ToDo)
	assert.Equal(t, "a", *updated.ToDo.Title)

	status, data = send("/updatePosition/"+todo.ID.Hex(), "text/plain")
	require.Equal(t, http.StatusOK, status, string(data))
	moved := decode[handlers.ToDoResponse](t, data)
	require.NotNil(t, moved.ToDo)
	assert.Equal(t, 1.0, *moved.ToDo.X)

	assert.Len(t, listAll(t, app), 3)
}

func TestMalformedJSONStillFails(t *testing.T) {
	app := setup(database.NewMemoryStore())
	req := httptest.NewRequest(http.MethodPost, "/addToDo", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Len(t, listAll(t, app), 0)
}

func TestUpdateNullFieldIsIgnored(t *testing.T) {
	app := setup(database.NewMemoryStore())
	todo := add(t, app, map[string]any{"title": "a"})

	req := httptest.NewRequest(http.MethodPost, "/update/"+todo.ID.Hex(), strings.NewReader(`{"title":null,"isDone":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[handlers.ToDoResponse](t, data)
	require.NotNil(t, got.ToDo)
	assert.Equal(t, "a", *got.ToDo.Title)
	assert.True(t, got.ToDo.Done())
}
