package apperr

import (
	"errors"
	"net/http"
)

// Taxonomie des échecs du moteur de scoring. Chaque chemin d'erreur des handlers
// retourne l'une de ces sentinelles (éventuellement enveloppée avec fmt.Errorf + %w).
var (
	// ErrUnauthorized : pas d'appelant authentifié valide
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument : catégorie ou filtre inconnu
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRateLimited : cooldown non respecté — condition attendue, pas une erreur serveur
	ErrRateLimited = errors.New("rate limited")
	// ErrConfiguration : la table des points ne connaît pas une catégorie pourtant valide
	ErrConfiguration = errors.New("configuration error")
	// ErrStorage : PostgreSQL indisponible ou timeout dépassé
	ErrStorage = errors.New("storage unavailable")
)

// Status mappe une erreur du domaine vers un code HTTP.
// Les erreurs inconnues sont traitées comme des pannes de stockage (500).
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrStorage):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Operational indique si l'erreur doit être loggée comme alerte opérationnelle
// (défaut d'un collaborateur) plutôt que comme erreur utilisateur.
func Operational(err error) bool {
	return errors.Is(err, ErrConfiguration) || errors.Is(err, ErrStorage)
}
