package model

import "time"

// DrinkEvent : une boisson enregistrée. Les points sont résolus à la création
// depuis la table drink_points et ne sont jamais recalculés rétroactivement.
type DrinkEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	DrinkType string    `json:"drink_type"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// CigaretteEvent : une cigarette comptée. Pas de points, juste une occurrence.
type CigaretteEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}
