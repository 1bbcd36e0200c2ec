package handler

import (
	"net/http"

	"github.com/viftode4/partydrinks/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "PartyDrinks API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/register", "description": "Inscription participant"},
				{"method": "POST", "path": "/auth/login", "description": "Connexion participant"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion participant"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Récupérer tous les participants"},
				{"method": "GET", "path": "/users/{id}", "description": "Récupérer un participant par ID"},
				{"method": "POST", "path": "/users/{id}/avatar", "description": "Upload photo de profil"},
			},
			"events": []map[string]string{
				{"method": "POST", "path": "/drinks", "description": "Enregistrer une boisson (cooldown 5s par type)"},
				{"method": "POST", "path": "/cigarettes", "description": "Compter une cigarette"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard?drinkType=all|cigarettes|Beer|Wine|Cocktail|Shot", "description": "Classement avec rangs et badges champion"},
			},
			"posts": []map[string]string{
				{"method": "GET", "path": "/posts", "description": "Fil de soirée"},
				{"method": "POST", "path": "/posts", "description": "Publier un message"},
				{"method": "POST", "path": "/posts/images", "description": "Upload image de post"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}
