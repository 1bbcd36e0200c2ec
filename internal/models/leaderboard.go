package model

// LeaderboardEntry est dérivé à chaque requête, jamais persisté.
// PreviousRank vient du dernier snapshot du rafraîchisseur (0 si inconnu) :
// c'est un confort d'affichage, pas un invariant du moteur.
type LeaderboardEntry struct {
	UserID         string   `json:"id"`
	Username       string   `json:"username"`
	ImageURL       string   `json:"image_url"`
	TotalPoints    int      `json:"total_points"`
	CigaretteCount int      `json:"cigarette_count"`
	Rank           int      `json:"rank"`
	PreviousRank   int      `json:"previous_rank"`
	Champions      []string `json:"champions"`
}
