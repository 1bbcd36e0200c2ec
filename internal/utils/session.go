package utils

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/viftode4/partydrinks/internal/database"
	model "github.com/viftode4/partydrinks/internal/models"
)

// SessionDuration durée de validité d'une session (24h — le temps d'une soirée et de la suivante)
const SessionDuration = 24 * time.Hour

// CreateSession crée une nouvelle session pour un utilisateur
func CreateSession(ctx context.Context, userID, ipAddress, userAgent string) (*model.Session, error) {
	now := time.Now()
	session := &model.Session{
		UserID:    userID,
		Token:     uuid.NewString(),
		IP:        ipAddress,
		UserAgent: userAgent,
		IsActive:  true,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionDuration),
	}

	err := database.DB.QueryRow(ctx,
		`INSERT INTO sessions(user_id, token, ip_address, user_agent, is_active, created_at, expires_at)
		 VALUES($1, $2, $3, $4, true, $5, $6)
		 RETURNING id`,
		session.UserID, session.Token, session.IP, session.UserAgent, session.CreatedAt, session.ExpiresAt,
	).Scan(&session.ID)

	if err != nil {
		return nil, err
	}

	return session, nil
}

// InvalidateSession invalide une session (soft delete)
func InvalidateSession(ctx context.Context, token string) error {
	res, err := database.DB.Exec(ctx,
		`UPDATE sessions
		 SET is_active=false, expires_at=NOW(), deleted_at=NOW()
		 WHERE token=$1 AND is_active=true AND deleted_at IS NULL`,
		token,
	)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return fmt.Errorf("session introuvable ou déjà invalide")
	}

	return nil
}

// ExtractIPAndUserAgent extrait l'IP et le User-Agent depuis une requête HTTP
func ExtractIPAndUserAgent(r *http.Request) (string, string) {
	return r.RemoteAddr, r.UserAgent()
}
