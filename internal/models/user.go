package model

import "time"

// User représente un participant de la soirée.
// Créé à l'inscription, immuable ensuite (hors changement d'avatar).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	ImageURL  string    `json:"profile_image_url"`
	CreatedAt time.Time `json:"created_at"`
}
