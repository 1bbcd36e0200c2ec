package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	model "github.com/viftode4/partydrinks/internal/models"
)

// database.DB est nil dans ces tests : tout aller-retour en base paniquerait.
// Un passage propre prouve donc que le middleware n'a pas refait le lookup.
func TestAuthMiddlewareReusesInjectedUser(t *testing.T) {
	var seen model.User
	called := false
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		u, err := GetUserFromContext(r)
		if err != nil {
			t.Fatalf("user should be in context: %v", err)
		}
		seen = u
		tok, err := GetTokenFromContext(r)
		if err != nil || tok != "tok-1" {
			t.Fatalf("token = %q, %v", tok, err)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/drinks", nil)
	ctx := context.WithValue(req.Context(), userContextKey, model.User{ID: "u1", Username: "alice"})
	ctx = context.WithValue(ctx, tokenContextKey, "tok-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))

	if !called {
		t.Fatal("handler was not reached")
	}
	if seen.ID != "u1" {
		t.Fatalf("user = %+v", seen)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached without a token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/drinks", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGetUserFromContextWithoutUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := GetUserFromContext(req); err == nil {
		t.Fatal("expected an error without an injected user")
	}
	if _, err := GetTokenFromContext(req); err == nil {
		t.Fatal("expected an error without an injected token")
	}
}
