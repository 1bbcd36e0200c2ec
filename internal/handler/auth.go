package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/viftode4/partydrinks/internal/database"
	"github.com/viftode4/partydrinks/internal/middleware"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	var user model.User
	var hashedPassword string
	err := database.DB.QueryRow(ctx,
		`SELECT id, username, COALESCE(profile_image_url,''), created_at, password_hash
		 FROM users WHERE username=$1`,
		req.Username,
	).Scan(&user.ID, &user.Username, &user.ImageURL, &user.CreatedAt, &hashedPassword)

	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	session, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": session.Token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	// Le token vient du contexte, déjà validé par le middleware
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "missing token", err)
		return
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	if err := utils.InvalidateSession(ctx, token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out", err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// Register inscrit un participant : username, mot de passe, photo facultative.
// Sans photo, un avatar par défaut est généré (au mieux — jamais bloquant).
func Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ProfileImageURL string `json:"profile_image_url"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	var user model.User
	err = database.DB.QueryRow(ctx,
		`INSERT INTO users(username, password_hash, profile_image_url, created_at)
		 VALUES($1, $2, NULLIF($3,''), NOW())
		 RETURNING id, username, COALESCE(profile_image_url,''), created_at`,
		payload.Username, string(hashed), payload.ProfileImageURL,
	).Scan(&user.ID, &user.Username, &user.ImageURL, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(w, http.StatusConflict, "username already exists")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}

	if user.ImageURL == "" {
		if avatarURL, err := utils.GenerateDefaultAvatar(user.ID, user.Username); err == nil {
			if _, err := database.DB.Exec(ctx,
				`UPDATE users SET profile_image_url=$1 WHERE id=$2`,
				avatarURL, user.ID,
			); err == nil {
				user.ImageURL = avatarURL
			}
		}
	}

	utils.Created(w, user, "User registered successfully")
}
