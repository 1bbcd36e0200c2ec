package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/viftode4/partydrinks/internal/apperr"
	"github.com/viftode4/partydrinks/internal/database"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/ranking"
	"github.com/viftode4/partydrinks/internal/scanner"
	"github.com/viftode4/partydrinks/internal/utils"
)

// Derniers rangs connus par filtre, pour remplir previous_rank entre deux
// rafraîchissements. Pure commodité d'affichage, jamais une entrée du calcul.
var (
	prevMu    sync.RWMutex
	prevRanks = map[string]map[string]int{}
)

func previousRanks(filter string) map[string]int {
	prevMu.RLock()
	defer prevMu.RUnlock()
	return prevRanks[filter]
}

func storeRanks(filter string, entries []model.LeaderboardEntry) {
	prevMu.Lock()
	defer prevMu.Unlock()
	prevRanks[filter] = ranking.Ranks(entries)
}

// GetLeaderboard recalcule le classement complet pour le filtre demandé.
// Lecture seule : l'historique des événements et la liste des utilisateurs
// sont relus à chaque appel, le classement n'est jamais persisté.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("drinkType")
	if filter == "" {
		filter = ranking.FilterAll
	}

	if !ranking.ValidFilter(filter) {
		utils.Error(w, http.StatusBadRequest, "invalid drink type filter")
		return
	}

	entries, err := computeLeaderboard(r.Context(), filter)
	if err != nil {
		utils.Error(w, apperr.Status(err), "could not compute leaderboard", err)
		return
	}

	storeRanks(filter, entries)

	// Tableau JSON brut, le front le consomme tel quel
	utils.JSON(w, http.StatusOK, entries)
}

// RefreshSnapshot recalcule le classement global pour garder previous_rank à
// jour entre deux requêtes ; appelé par la boucle de rafraîchissement.
func RefreshSnapshot(ctx context.Context) error {
	entries, err := computeLeaderboard(ctx, ranking.FilterAll)
	if err != nil {
		return err
	}
	storeRanks(ranking.FilterAll, entries)
	return nil
}

func computeLeaderboard(ctx context.Context, filter string) ([]model.LeaderboardEntry, error) {
	ctx, cancel := database.Context(ctx)
	defer cancel()

	users, err := fetchUsers(ctx)
	if err != nil {
		return nil, err
	}
	drinks, err := fetchDrinks(ctx)
	if err != nil {
		return nil, err
	}
	cigarettes, err := fetchCigarettes(ctx)
	if err != nil {
		return nil, err
	}

	return ranking.Compute(users, drinks, cigarettes, filter, previousRanks(filter)), nil
}

// fetchUsers liste les utilisateurs dans l'ordre d'inscription : c'est cet
// ordre qui départage les égalités (tri stable) et les badges champion
func fetchUsers(ctx context.Context) ([]model.User, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, username, COALESCE(profile_image_url,''), created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", apperr.ErrStorage)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanner.ScanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", apperr.ErrStorage)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", apperr.ErrStorage)
	}

	return users, nil
}

func fetchDrinks(ctx context.Context) ([]model.DrinkEvent, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, drink_type, points, created_at
		FROM drinks
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query drinks: %w", apperr.ErrStorage)
	}
	defer rows.Close()

	var drinks []model.DrinkEvent
	for rows.Next() {
		d, err := scanner.ScanDrinkEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan drink row: %w", apperr.ErrStorage)
		}
		drinks = append(drinks, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read drinks: %w", apperr.ErrStorage)
	}

	return drinks, nil
}

func fetchCigarettes(ctx context.Context) ([]model.CigaretteEvent, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, count, created_at
		FROM cigarettes
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query cigarettes: %w", apperr.ErrStorage)
	}
	defer rows.Close()

	var cigarettes []model.CigaretteEvent
	for rows.Next() {
		c, err := scanner.ScanCigaretteEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cigarette row: %w", apperr.ErrStorage)
		}
		cigarettes = append(cigarettes, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cigarettes: %w", apperr.ErrStorage)
	}

	return cigarettes, nil
}
