package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/viftode4/partydrinks/internal/handler"
	"github.com/viftode4/partydrinks/internal/middleware"
	"github.com/viftode4/partydrinks/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Scoring events
	authenticatedRoutes.HandleFunc("/drinks", handler.AddDrink).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/cigarettes", handler.AddCigarette).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)

	// Party feed
	r.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/posts/images", handler.UploadPostImage).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// Fichiers uploadés localement (avatars par défaut)
	r.PathPrefix("/avatars/").Handler(
		http.StripPrefix("/avatars/", http.FileServer(http.Dir("uploads/avatars"))),
	).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
