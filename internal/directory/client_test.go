package directory_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vigilhub/attention-escalator/internal/directory"
	"github.com/vigilhub/attention-escalator/internal/domain"
)

func TestClient_ListWorkItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/items" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"a","status":"pending","deleted":false,"priority":"high"},
			{"id":"b","status":"resolved","deleted":false,"priority":"low","amount":600,"currency":"USD"}
		]`))
	}))
	defer srv.Close()

	c := directory.NewClient(srv.URL, time.Second)
	items, err := c.ListWorkItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "a" || items[0].Priority != domain.PriorityHigh {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Amount == nil || *items[1].Amount != 600 {
		t.Fatalf("expected amount 600, got %+v", items[1].Amount)
	}
}

func TestClient_GetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := directory.NewClient(srv.URL, time.Second)
	_, err := c.GetUser(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_UserCRUD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /users":
			var u directory.User
			_ = json.NewDecoder(r.Body).Decode(&u)
			u.ID = "u1"
			respond(w, http.StatusCreated, u)
		case "PUT /users/u1":
			var u directory.User
			_ = json.NewDecoder(r.Body).Decode(&u)
			u.ID = "u1"
			respond(w, http.StatusOK, u)
		case "DELETE /users/u1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := directory.NewClient(srv.URL, time.Second)
	ctx := context.Background()

	created, err := c.CreateUser(ctx, directory.User{Name: "Sam", Email: "sam@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "u1" {
		t.Fatalf("expected assigned id, got %q", created.ID)
	}

	updated, err := c.UpdateUser(ctx, "u1", directory.User{Name: "Sam", Email: "sam@corp.example.com"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "sam@corp.example.com" {
		t.Fatalf("unexpected updated email: %q", updated.Email)
	}

	if err := c.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
