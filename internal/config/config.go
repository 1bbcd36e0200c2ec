package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config regroupe toute la configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port string
	URL  string // URL publique du serveur (utilisée pour les fichiers uploadés)

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Fenêtre minimale entre deux événements du même type pour un même utilisateur
	CooldownWindow time.Duration
	// Cadence de rafraîchissement du lookup des points et du snapshot leaderboard
	RefreshEvery time.Duration
	// Timeout appliqué à chaque aller-retour vers PostgreSQL
	DBTimeout time.Duration
}

// LoadConfig charge la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	port := strings.TrimPrefix(envDefault("PORT", "8080"), ":")

	cfg := &Config{
		Port:                port,
		URL:                 strings.TrimRight(envDefault("PUBLIC_URL", "http://localhost:"+port), "/"),
		DBHost:              envDefault("DB_HOST", "localhost"),
		DBPort:              envDefault("DB_PORT", "5432"),
		DBUser:              envDefault("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              envDefault("DB_NAME", "partydrinks"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CooldownWindow:      envDurationDefault("PARTYDRINKS_COOLDOWN", 5*time.Second),
		RefreshEvery:        envDurationDefault("PARTYDRINKS_REFRESH_EVERY", 10*time.Second),
		DBTimeout:           envDurationDefault("PARTYDRINKS_DB_TIMEOUT", 5*time.Second),
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if cfg.CooldownWindow <= 0 {
		return nil, fmt.Errorf("PARTYDRINKS_COOLDOWN must be positive")
	}
	if cfg.RefreshEvery <= 0 {
		return nil, fmt.Errorf("PARTYDRINKS_REFRESH_EVERY must be positive")
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
