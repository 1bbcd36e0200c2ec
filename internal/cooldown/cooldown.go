// Package cooldown applique la fenêtre minimale entre deux événements du même
// type pour un même utilisateur. La réservation est atomique par clé : sous K
// requêtes concurrentes dans la fenêtre, exactement une passe, les autres
// reçoivent apperr.ErrRateLimited.
package cooldown

import (
	"fmt"
	"sync"
	"time"

	"github.com/viftode4/partydrinks/internal/apperr"
)

// Limiter garde l'horodatage du dernier événement accepté par clé.
type Limiter struct {
	window time.Duration

	mu   sync.Mutex
	last map[string]time.Time
}

func New(window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		last:   make(map[string]time.Time),
	}
}

// Window retourne la fenêtre de cooldown (réutilisée par la garde SQL)
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Key construit la clé (utilisateur, catégorie)
func Key(userID, category string) string {
	return userID + "|" + category
}

// Reserve tente de réserver la clé à l'instant now.
// Succès : l'horodatage est enregistré immédiatement (un appelant qui abandonne
// après coup ne le retire pas) et release permet d'annuler la réservation si
// l'insertion échoue ensuite — rien n'est appliqué à moitié.
// Échec : ErrRateLimited si un événement a déjà été accepté dans la fenêtre.
func (l *Limiter) Reserve(key string, now time.Time) (release func(), err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, seen := l.last[key]
	if seen && now.Sub(prev) < l.window {
		return nil, fmt.Errorf("last event %s ago: %w", now.Sub(prev), apperr.ErrRateLimited)
	}

	l.last[key] = now

	var once sync.Once
	release = func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			// Ne restaurer que si personne n'a réservé depuis
			if cur, ok := l.last[key]; ok && cur.Equal(now) {
				if seen {
					l.last[key] = prev
				} else {
					delete(l.last, key)
				}
			}
		})
	}
	return release, nil
}
