package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/viftode4/partydrinks/internal/apperr"
	"github.com/viftode4/partydrinks/internal/database"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/utils"
)

// Context keys
type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// AuthMiddleware valide le token de session et injecte l'utilisateur dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// OptionalAuth sur le routeur racine a déjà fait le lookup pour cette
		// requête : pas de second aller-retour en base
		if _, err := GetUserFromContext(r); err == nil {
			next.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get("Authorization")
		if token == "" {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			utils.Error(w, apperr.Status(err), "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, *user)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injecte l'utilisateur si un token valide est présent, sans bloquer sinon
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get("Authorization"); token != "" {
			if user, err := validateTokenAndGetUser(r.Context(), token); err == nil {
				ctx := context.WithValue(r.Context(), userContextKey, *user)
				ctx = context.WithValue(ctx, tokenContextKey, token)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// validateTokenAndGetUser valide le token et retourne l'utilisateur associé
func validateTokenAndGetUser(ctx context.Context, token string) (*model.User, error) {
	ctx, cancel := database.Context(ctx)
	defer cancel()

	var user model.User
	err := database.DB.QueryRow(ctx, `
		SELECT u.id, u.username, COALESCE(u.profile_image_url,''), u.created_at
		FROM users u
		JOIN sessions s ON u.id = s.user_id
		WHERE s.token = $1
			AND s.is_active = true
			AND s.expires_at > NOW()
			AND s.deleted_at IS NULL`,
		token,
	).Scan(&user.ID, &user.Username, &user.ImageURL, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("token not found or expired: %w", apperr.ErrUnauthorized)
		}
		return nil, fmt.Errorf("validate token: %w", apperr.ErrStorage)
	}

	return &user, nil
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.User, error) {
	user, ok := r.Context().Value(userContextKey).(model.User)
	if !ok {
		return model.User{}, apperr.ErrUnauthorized
	}
	return user, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", apperr.ErrUnauthorized
	}
	return token, nil
}
