// Package refresh fournit la boucle de rafraîchissement périodique du serveur
// (lookup des points, snapshot du leaderboard). Tâche annulable via contexte,
// pas de chaîne de callbacks.
package refresh

import (
	"context"
	"time"

	"github.com/viftode4/partydrinks/internal/utils"
)

// Run exécute fn immédiatement puis à chaque tick, jusqu'à annulation du
// contexte. Une erreur de fn est loggée et n'arrête pas la boucle : le
// prochain tick retentera.
func Run(ctx context.Context, every time.Duration, name string, fn func(context.Context) error) {
	tick := func() {
		if err := fn(ctx); err != nil {
			utils.LogError("refresh %s: %v", name, err)
		}
	}

	tick()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}
