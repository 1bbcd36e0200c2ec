package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/viftode4/partydrinks/internal/config"
	"github.com/viftode4/partydrinks/internal/database"
	"github.com/viftode4/partydrinks/internal/middleware"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/scanner"
	"github.com/viftode4/partydrinks/internal/services"
	"github.com/viftode4/partydrinks/internal/utils"
)

// CreatePost publie un message sur le fil de soirée
func CreatePost(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var payload struct {
		Content   string   `json:"content"`
		ImageURLs []string `json:"image_urls"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	payload.Content = strings.TrimSpace(payload.Content)
	if payload.Content == "" && len(payload.ImageURLs) == 0 {
		utils.Error(w, http.StatusBadRequest, "post needs content or an image")
		return
	}

	if payload.ImageURLs == nil {
		payload.ImageURLs = []string{}
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	post := model.Post{
		UserID:       user.ID,
		Content:      payload.Content,
		ImageURLs:    payload.ImageURLs,
		Username:     user.Username,
		UserImageURL: user.ImageURL,
	}
	err = database.DB.QueryRow(ctx,
		`INSERT INTO posts(user_id, content, image_urls, created_at)
		 VALUES($1, $2, $3, NOW())
		 RETURNING id, created_at`,
		user.ID, payload.Content, pq.Array(payload.ImageURLs),
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create post", err)
		return
	}

	utils.Created(w, post, "Post created successfully")
}

// GetPosts retourne le fil, du plus récent au plus ancien, chaque post enrichi
// avec l'auteur et ses totaux courants (points, cigarettes)
func GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := database.Context(r.Context())
	defer cancel()

	rows, err := database.DB.Query(ctx, `
		SELECT
			p.id, p.user_id, p.content, COALESCE(p.image_urls, '{}'), p.created_at,
			u.username, u.profile_image_url,
			(SELECT SUM(d.points) FROM drinks d WHERE d.user_id = p.user_id),
			(SELECT SUM(c.count) FROM cigarettes c WHERE c.user_id = p.user_id)
		FROM posts p
		INNER JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query posts", err)
		return
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		p, err := scanner.ScanPost(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan post row", err)
			return
		}
		posts = append(posts, *p)
	}

	utils.Success(w, posts)
}

// UploadPostImage uploade une image destinée à un post et retourne son URL
func UploadPostImage(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserFromContext(r); err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	// 5 Mo maximum pour les images de post
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing image file", err)
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

	imageURL, err := cld.UploadPostImage(r.Context(), file, uuid.NewString())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload image", err)
		return
	}

	utils.Success(w, map[string]string{"image_url": imageURL})
}
