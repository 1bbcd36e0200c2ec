package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/viftode4/partydrinks/internal/config"
	"github.com/viftode4/partydrinks/internal/database"
	"github.com/viftode4/partydrinks/internal/middleware"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/scanner"
	"github.com/viftode4/partydrinks/internal/services"
	"github.com/viftode4/partydrinks/internal/utils"
)

func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := database.Context(r.Context())
	defer cancel()

	rows, err := database.DB.Query(ctx, `
		SELECT id, username, COALESCE(profile_image_url,''), created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanner.ScanUser(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row", err)
			return
		}
		users = append(users, *u)
	}

	utils.Success(w, users)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	user, err := scanner.ScanUser(database.DB.QueryRow(ctx,
		`SELECT id, username, COALESCE(profile_image_url,''), created_at
		 FROM users WHERE id=$1`,
		id,
	))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "user not found", err)
		return
	}

	utils.Success(w, user)
}

// UploadAvatar remplace la photo de profil de l'utilisateur authentifié
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	vars := mux.Vars(r)
	if vars["id"] != user.ID {
		utils.Error(w, http.StatusForbidden, "cannot change another user's avatar")
		return
	}

	// 2 Mo maximum, comme le bucket d'origine
	if err := r.ParseMultipartForm(2 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file", err)
		return
	}
	defer file.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load config", err)
		return
	}

	cld, err := services.NewCloudinaryService(cfg)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "image storage is not configured", err)
		return
	}

	imageURL, err := cld.UploadProfileImage(r.Context(), file, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	if _, err := database.DB.Exec(ctx,
		`UPDATE users SET profile_image_url=$1 WHERE id=$2`,
		imageURL, user.ID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar", err)
		return
	}

	utils.Success(w, map[string]string{"profile_image_url": imageURL})
}
