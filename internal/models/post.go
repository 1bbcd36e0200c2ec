package model

import "time"

// Post : un message du fil de soirée, avec images facultatives.
// Les champs Username/UserImageURL/TotalPoints/CigaretteCount sont enrichis
// en lecture (jointure users + totaux courants), jamais stockés.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`

	Username       string `json:"username,omitempty"`
	UserImageURL   string `json:"user_image_url,omitempty"`
	TotalPoints    int    `json:"total_points"`
	CigaretteCount int    `json:"cigarette_count"`
}
