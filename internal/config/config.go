package config

import (
	"os"
	"strings"
)

type Config struct {
	Port     string
	CORS     CORSConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Media    MediaConfig
	OIDC     OIDCConfig
	AI       AIConfig
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  string
	RefreshTokenSecret string
	RefreshTokenExpiry string
	CookieDomain       string
	CookiePath         string
	CookieSecure       string
	CookieSameSite     string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type MediaConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
}

type OIDCConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AIConfig struct {
	APIKey string
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "8000"),
		CORS: CORSConfig{
			AllowedOrigins:   splitList(os.Getenv("CORS_ORIGIN")),
			AllowCredentials: true,
		},
		Auth: AuthConfig{
			AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
			AccessTokenExpiry:  getenv("ACCESS_TOKEN_EXPIRY", "1h"),
			RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
			RefreshTokenExpiry: getenv("REFRESH_TOKEN_EXPIRY", "240h"),
			CookieDomain:       os.Getenv("AUTH_COOKIE_DOMAIN"),
			CookiePath:         getenv("AUTH_COOKIE_PATH", "/"),
			CookieSecure:       os.Getenv("AUTH_COOKIE_SECURE"),
			CookieSameSite:     os.Getenv("AUTH_COOKIE_SAMESITE"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Media: MediaConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			BaseURL:   getenv("CLOUDINARY_BASE_URL", "https://api.cloudinary.com/v1_1"),
		},
		OIDC: OIDCConfig{
			Issuer:       os.Getenv("OIDC_ISSUER"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
		AI: AIConfig{
			APIKey: os.Getenv("AI_API_KEY"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
