package points

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/viftode4/partydrinks/internal/apperr"
	"github.com/viftode4/partydrinks/internal/database"
)

// Categories : l'énumération fixe des types de boisson.
// L'ordre est celui du scan des champions — il doit rester stable.
var Categories = []string{"Beer", "Wine", "Cocktail", "Shot"}

// CigaretteKind : le badge champion cigarettes, distinct des boissons.
const CigaretteKind = "Cigarette"

// IsCategory indique si s est un type de boisson connu
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Lookup mappe un type de boisson vers sa valeur en points (strictement positive).
// Lecture seule pour le moteur ; la table drink_points est administrée ailleurs.
type Lookup map[string]int

// PointsFor retourne la valeur en points d'une catégorie.
// Une catégorie absente de la table est un défaut de configuration, pas une
// erreur utilisateur : la validation d'énumération a déjà eu lieu en amont.
func (l Lookup) PointsFor(category string) (int, error) {
	pts, ok := l[category]
	if !ok {
		return 0, fmt.Errorf("no point value for drink type %q: %w", category, apperr.ErrConfiguration)
	}
	return pts, nil
}

func (l Lookup) validate() error {
	for category, pts := range l {
		if pts <= 0 {
			return fmt.Errorf("drink type %q has non-positive point value %d: %w", category, pts, apperr.ErrConfiguration)
		}
	}
	return nil
}

// Snapshot courant, échangé atomiquement par le rafraîchisseur pendant que
// les requêtes le lisent.
var current atomic.Value // Lookup

func init() {
	current.Store(Lookup{})
}

// Current retourne le snapshot courant du lookup
func Current() Lookup {
	return current.Load().(Lookup)
}

// Replace remplace le snapshot courant (utilisé au démarrage et par les tests)
func Replace(l Lookup) error {
	if err := l.validate(); err != nil {
		return err
	}
	current.Store(l)
	return nil
}

// PointsFor résout une catégorie sur le snapshot courant
func PointsFor(category string) (int, error) {
	return Current().PointsFor(category)
}

// Reload recharge la table drink_points et bascule le snapshot.
// En cas d'échec, l'ancien snapshot reste servi.
func Reload(ctx context.Context) error {
	ctx, cancel := database.Context(ctx)
	defer cancel()

	rows, err := database.DB.Query(ctx, `SELECT drink_type, points FROM drink_points`)
	if err != nil {
		return fmt.Errorf("query drink_points: %w", apperr.ErrStorage)
	}
	defer rows.Close()

	next := Lookup{}
	for rows.Next() {
		var category string
		var pts int
		if err := rows.Scan(&category, &pts); err != nil {
			return fmt.Errorf("scan drink_points row: %w", apperr.ErrStorage)
		}
		next[category] = pts
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read drink_points: %w", apperr.ErrStorage)
	}

	return Replace(next)
}
