// Package ranking recalcule le classement complet à partir de l'historique des
// événements. Fonction pure : mêmes entrées, même sortie, aucun effet de bord.
package ranking

import (
	"sort"

	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/points"
)

// Filtres du leaderboard. FilterAll somme toutes les boissons,
// FilterCigarettes classe par nombre de cigarettes, sinon un type de boisson.
const (
	FilterAll        = "all"
	FilterCigarettes = "cigarettes"
)

// ValidFilter indique si f est un filtre accepté par Compute
func ValidFilter(f string) bool {
	return f == FilterAll || f == FilterCigarettes || points.IsCategory(f)
}

// Compute produit le classement pour un filtre donné.
//
//   - les champions sont calculés une fois, toutes catégories plus cigarettes,
//     indépendamment du filtre : maximum strict (>) en parcourant les
//     utilisateurs dans l'ordre d'entrée, le premier à égalité garde le badge,
//     pas de champion si le maximum vaut zéro
//   - les utilisateurs à score nul sous le filtre sont exclus (pas classés derniers)
//   - tri stable par score décroissant : à égalité, l'ordre d'entrée est conservé
//   - rangs denses 1..N attribués après filtrage et tri
//
// previous fournit les derniers rangs connus (userID → rang) pour remplir
// PreviousRank ; nil est accepté.
func Compute(users []model.User, drinks []model.DrinkEvent, cigarettes []model.CigaretteEvent, filter string, previous map[string]int) []model.LeaderboardEntry {
	// Totaux par utilisateur et par catégorie
	drinkTotals := make(map[string]map[string]int, len(users))
	for _, d := range drinks {
		byCat := drinkTotals[d.UserID]
		if byCat == nil {
			byCat = make(map[string]int)
			drinkTotals[d.UserID] = byCat
		}
		byCat[d.DrinkType] += d.Points
	}

	cigTotals := make(map[string]int, len(users))
	for _, c := range cigarettes {
		cigTotals[c.UserID] += c.Count
	}

	champions := championsByKind(users, drinkTotals, cigTotals)

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		score := 0
		switch filter {
		case FilterAll:
			for _, pts := range drinkTotals[u.ID] {
				score += pts
			}
		case FilterCigarettes:
			score = cigTotals[u.ID]
		default:
			score = drinkTotals[u.ID][filter]
		}

		if score == 0 {
			continue
		}

		entries = append(entries, model.LeaderboardEntry{
			UserID:         u.ID,
			Username:       u.Username,
			ImageURL:       u.ImageURL,
			TotalPoints:    score,
			CigaretteCount: cigTotals[u.ID],
			PreviousRank:   previous[u.ID],
			Champions:      badgesFor(u.ID, champions),
		})
	}

	// Tri stable : pas de clé secondaire, les égalités gardent l'ordre d'entrée
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// championsByKind trouve le champion de chaque catégorie puis des cigarettes.
// Comparaison strictement supérieure : le premier utilisateur rencontré à
// égalité conserve le badge.
func championsByKind(users []model.User, drinkTotals map[string]map[string]int, cigTotals map[string]int) map[string]string {
	champions := make(map[string]string, len(points.Categories)+1)

	for _, cat := range points.Categories {
		best, bestID := 0, ""
		for _, u := range users {
			if pts := drinkTotals[u.ID][cat]; pts > best {
				best, bestID = pts, u.ID
			}
		}
		if bestID != "" {
			champions[cat] = bestID
		}
	}

	best, bestID := 0, ""
	for _, u := range users {
		if n := cigTotals[u.ID]; n > best {
			best, bestID = n, u.ID
		}
	}
	if bestID != "" {
		champions[points.CigaretteKind] = bestID
	}

	return champions
}

// badgesFor liste les badges d'un utilisateur, dans l'ordre fixe des catégories
func badgesFor(userID string, champions map[string]string) []string {
	badges := []string{}
	for _, cat := range points.Categories {
		if champions[cat] == userID {
			badges = append(badges, cat)
		}
	}
	if champions[points.CigaretteKind] == userID {
		badges = append(badges, points.CigaretteKind)
	}
	return badges
}

// Ranks extrait la map userID → rang d'un classement (snapshot previous_rank)
func Ranks(entries []model.LeaderboardEntry) map[string]int {
	ranks := make(map[string]int, len(entries))
	for _, e := range entries {
		ranks[e.UserID] = e.Rank
	}
	return ranks
}
