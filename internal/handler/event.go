package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/viftode4/partydrinks/internal/apperr"
	"github.com/viftode4/partydrinks/internal/cooldown"
	"github.com/viftode4/partydrinks/internal/database"
	"github.com/viftode4/partydrinks/internal/middleware"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/points"
	"github.com/viftode4/partydrinks/internal/utils"
)

// Cooldown : limiteur par (utilisateur, type d'événement). La fenêtre est
// remplacée au démarrage par celle de la configuration.
var Cooldown = cooldown.New(5 * time.Second)

// slowDownMessage : montré tel quel côté client — c'est une condition
// attendue, pas une erreur
const slowDownMessage = "Please wait a moment before adding another drink of the same type"

// AddDrink enregistre une boisson pour l'utilisateur authentifié.
// La vérification de cooldown et l'insertion sont atomiques : sous requêtes
// concurrentes pour le même (utilisateur, type), une seule passe, les autres
// reçoivent 429.
func AddDrink(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var payload struct {
		DrinkType string `json:"drink_type"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if !points.IsCategory(payload.DrinkType) {
		utils.Error(w, http.StatusBadRequest, "invalid drink type")
		return
	}

	// Valeur en points résolue à la création, jamais recalculée ensuite
	pts, err := points.PointsFor(payload.DrinkType)
	if err != nil {
		utils.Error(w, apperr.Status(err), "failed to get drink points", err)
		return
	}

	// Réservation du cooldown : seule la vérification serveur fait foi,
	// le timer côté client n'est qu'indicatif
	release, err := Cooldown.Reserve(cooldown.Key(user.ID, payload.DrinkType), time.Now())
	if err != nil {
		utils.Error(w, apperr.Status(err), slowDownMessage)
		return
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	// Garde SQL dans le même aller-retour : même si la réservation locale est
	// perdue (redémarrage, autre réplique), la fenêtre reste appliquée
	event := model.DrinkEvent{UserID: user.ID, DrinkType: payload.DrinkType, Points: pts}
	err = database.DB.QueryRow(ctx, `
		INSERT INTO drinks(user_id, drink_type, points, created_at)
		SELECT $1, $2, $3, NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM drinks
			WHERE user_id = $1 AND drink_type = $2
				AND created_at > NOW() - make_interval(secs => $4)
		)
		RETURNING id, created_at
	`, user.ID, payload.DrinkType, pts, Cooldown.Window().Seconds(),
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Un événement récent existait déjà en base (réservation locale
			// perdue après un redémarrage) : rien n'a été inséré, on annule la
			// nôtre pour ne pas repousser la fenêtre au-delà du vrai dernier
			// événement. La garde SQL reste seule juge du retry.
			release()
			utils.Error(w, http.StatusTooManyRequests, slowDownMessage)
			return
		}
		// L'insertion a échoué : rien n'est appliqué, on annule la réservation
		release()
		utils.Error(w, http.StatusInternalServerError, "failed to add drink", err)
		return
	}

	utils.Created(w, event, "Drink added successfully")
}

// AddCigarette compte une cigarette (une occurrence, pas de points).
// Même règle de cooldown, clé séparée des boissons.
func AddCigarette(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	release, err := Cooldown.Reserve(cooldown.Key(user.ID, points.CigaretteKind), time.Now())
	if err != nil {
		utils.Error(w, apperr.Status(err), slowDownMessage)
		return
	}

	ctx, cancel := database.Context(r.Context())
	defer cancel()

	event := model.CigaretteEvent{UserID: user.ID, Count: 1}
	err = database.DB.QueryRow(ctx, `
		INSERT INTO cigarettes(user_id, count, created_at)
		SELECT $1, 1, NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM cigarettes
			WHERE user_id = $1
				AND created_at > NOW() - make_interval(secs => $2)
		)
		RETURNING id, created_at
	`, user.ID, Cooldown.Window().Seconds(),
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Même logique que pour les boissons : la base a le dernier mot
			release()
			utils.Error(w, http.StatusTooManyRequests, slowDownMessage)
			return
		}
		release()
		utils.Error(w, http.StatusInternalServerError, "failed to add cigarette", err)
		return
	}

	utils.Created(w, event, "Cigarette added successfully")
}
