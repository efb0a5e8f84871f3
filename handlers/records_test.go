package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"unison/models"
)

func TestTodoCreateListUpdate(t *testing.T) {
	r, _ := newTestRouter(t)
	a := register(t, r, "alice@example.com", "Alice")

	w := doJSON(t, r, http.MethodPost, "/todos", a.Token, gin.H{
		"title": "write report", "category": "work", "estimation": 3, "total": 4, "active": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var created models.Todo
	decode(t, w, &created)
	if created.ID == "" || created.Title != "write report" || created.UserID != a.User.ID {
		t.Errorf("created = %+v", created)
	}

	w = doJSON(t, r, http.MethodGet, "/todos", a.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var todos []models.Todo
	decode(t, w, &todos)
	if len(todos) != 1 || todos[0].ID != created.ID {
		t.Errorf("list = %+v", todos)
	}

	w = doJSON(t, r, http.MethodPut, "/todos/"+created.ID, a.Token, gin.H{
		"title": "write report", "category": "work", "estimation": 3, "total": 4, "progress": 2, "active": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
	}
	var updated models.Todo
	decode(t, w, &updated)
	if updated.Progress != 2 {
		t.Errorf("progress = %d, want 2", updated.Progress)
	}
}

func TestTodoIsolationBetweenUsers(t *testing.T) {
	r, _ := newTestRouter(t)
	a := register(t, r, "alice@example.com", "Alice")
	b := register(t, r, "bob@example.com", "Bob")

	w := doJSON(t, r, http.MethodPost, "/todos", a.Token, gin.H{
		"title": "private", "estimation": 1, "total": 1,
	})
	var created models.Todo
	decode(t, w, &created)

	// B cannot see or touch A's todo.
	w = doJSON(t, r, http.MethodGet, "/todos", b.Token, nil)
	var todos []models.Todo
	decode(t, w, &todos)
	if len(todos) != 0 {
		t.Errorf("B sees %d todos, want 0", len(todos))
	}

	w = doJSON(t, r, http.MethodPut, "/todos/"+created.ID, b.Token, gin.H{
		"title": "hijacked", "estimation": 1, "total": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign update: status %d, want 404", w.Code)
	}
}

func TestFocusSessionWithTodoLinks(t *testing.T) {
	r, _ := newTestRouter(t)
	a := register(t, r, "alice@example.com", "Alice")

	w := doJSON(t, r, http.MethodPost, "/todos", a.Token, gin.H{
		"title": "deep work", "estimation": 2, "total": 2,
	})
	var todo models.Todo
	decode(t, w, &todo)

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	w = doJSON(t, r, http.MethodPost, "/focus", a.Token, gin.H{
		"start":          start,
		"end":            start.Add(25 * time.Minute),
		"durationTarget": 1500,
		"durationFocus":  1400,
		"todos": []gin.H{
			{"todo": todo.ID, "duration": 1400, "progressStart": 0, "progressEnd": 1},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create focus: status %d, body %s", w.Code, w.Body.String())
	}
	var session models.FocusSession
	decode(t, w, &session)
	if len(session.Todos) != 1 || session.Todos[0].TodoID != todo.ID || session.Todos[0].FocusID != session.ID {
		t.Errorf("session links = %+v", session.Todos)
	}

	w = doJSON(t, r, http.MethodGet, "/focus", a.Token, nil)
	var sessions []models.FocusSession
	decode(t, w, &sessions)
	if len(sessions) != 1 || sessions[0].ID != session.ID {
		t.Errorf("list = %+v", sessions)
	}
}

func TestFocusSessionEndBeforeStart(t *testing.T) {
	r, _ := newTestRouter(t)
	a := register(t, r, "alice@example.com", "Alice")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPost, "/focus", a.Token, gin.H{
		"start":          start,
		"end":            start.Add(-time.Minute),
		"durationTarget": 1500,
		"durationFocus":  1400,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestAppUsageRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)
	a := register(t, r, "alice@example.com", "Alice")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPost, "/usage", a.Token, gin.H{
		"appName": "editor", "start": start, "duration": 600,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/usage", a.Token, nil)
	var usages []models.AppUsage
	decode(t, w, &usages)
	if len(usages) != 1 || usages[0].AppName != "editor" || usages[0].Duration != 600 {
		t.Errorf("list = %+v", usages)
	}
}
