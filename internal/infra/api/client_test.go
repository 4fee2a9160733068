package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestClient_ListByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks/email/a@x.com", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.Task{
			{ID: "1", Title: "first", Status: domain.StatusTodo, Email: "a@x.com"},
			{ID: "2", Title: "second", Status: domain.StatusCompleted, Email: "a@x.com"},
		})
	}))
	defer srv.Close()

	tasks, err := New(srv.URL).ListByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, domain.StatusCompleted, tasks[1].Status)
}

func TestClient_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such task", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestClient_Get_EmptyID(t *testing.T) {
	_, err := New("http://unused").Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidTaskID)
}

func TestClient_Create_AssignsServerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var task domain.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		// The placeholder id must never reach the server.
		assert.Empty(t, task.ID)

		task.ID = "65f1server"
		_ = json.NewEncoder(w).Encode(task)
	}))
	defer srv.Close()

	created, err := New(srv.URL).Create(context.Background(), domain.Task{
		ID:       domain.TempIDPrefix + "abc",
		Title:    "new task",
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
		Email:    "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "65f1server", created.ID)
	assert.Equal(t, "new task", created.Title)
}

func TestClient_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tasks/42", r.URL.Path)

		var task domain.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		_ = json.NewEncoder(w).Encode(task)
	}))
	defer srv.Close()

	updated, err := New(srv.URL).Update(context.Background(), "42", domain.Task{
		ID:     "42",
		Title:  "renamed",
		Status: domain.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
}

func TestClient_Delete_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL).Delete(context.Background(), "42")

	var se *domain.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "boom", se.Body)
}

func TestClient_NetworkError(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).ListByEmail(context.Background(), "a@x.com")

	var ne *domain.NetworkError
	assert.ErrorAs(t, err, &ne)
}

func TestClient_RegisterUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/a@x.com", r.URL.Path)

		var rec domain.UserRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Equal(t, "member", rec.Role)

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer srv.Close()

	err := New(srv.URL).RegisterUser(context.Background(), domain.UserRecord{
		Name:  "Alice",
		Email: "a@x.com",
		Team:  "platform",
		Role:  domain.DefaultRole,
	})
	assert.NoError(t, err)
}

func TestClient_RegisterUser_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "user exists"})
	}))
	defer srv.Close()

	err := New(srv.URL).RegisterUser(context.Background(), domain.UserRecord{Email: "a@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user exists")
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).ListByEmail(ctx, "a@x.com")
	var ne *domain.NetworkError
	assert.ErrorAs(t, err, &ne)
}
