package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vidstream/backend/internal/config"
	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessCookieName  = "AccessToken"
	RefreshCookieName = "RefreshToken"
)

// CredentialStore is the slice of the user store the session lifecycle
// needs. Calls are assumed atomic per-call; no multi-row transaction is
// used or required here.
type CredentialStore interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, id string, token *string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type CookieConfig struct {
	Path          string
	Domain        string
	Secure        bool
	SameSite      http.SameSite
	AccessMaxAge  int
	RefreshMaxAge int
}

type AuthService struct {
	users         CredentialStore
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	cookieCfg     CookieConfig
}

type accessClaims struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	jwt.RegisteredClaims
}

func NewAuthService(users CredentialStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("%w: ACCESS_TOKEN_SECRET is required", ErrMisconfigured)
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("%w: REFRESH_TOKEN_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ACCESS_TOKEN_EXPIRY", ErrMisconfigured)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid REFRESH_TOKEN_EXPIRY", ErrMisconfigured)
	}

	cookieSecure, err := parseBool(cfg.CookieSecure, true)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid AUTH_COOKIE_SECURE", ErrMisconfigured)
	}

	cookieSameSite, err := parseSameSite(cfg.CookieSameSite)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid AUTH_COOKIE_SAMESITE", ErrMisconfigured)
	}

	if cookieSameSite == http.SameSiteNoneMode && !cookieSecure {
		return nil, fmt.Errorf("%w: SameSite=None requires Secure cookie", ErrMisconfigured)
	}

	cookiePath := cfg.CookiePath
	if strings.TrimSpace(cookiePath) == "" {
		cookiePath = "/"
	}

	return &AuthService{
		users:         users,
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		cookieCfg: CookieConfig{
			Path:          cookiePath,
			Domain:        cfg.CookieDomain,
			Secure:        cookieSecure,
			SameSite:      cookieSameSite,
			AccessMaxAge:  int(accessTTL.Seconds()),
			RefreshMaxAge: int(refreshTTL.Seconds()),
		},
	}, nil
}

func (s *AuthService) CookieConfig() CookieConfig {
	return s.cookieCfg
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, apiError(ErrInvalidInput, "All fields required.")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInvalidInput, "User does not exist.")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apiError(ErrInvalidInput, "Invalid user credentials.")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		User:         user.Public(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout clears the stored refresh token. This alone revokes future
// rotation attempts even if an old refresh token leaks.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.users.UpdateRefreshToken(ctx, userID, nil)
}

// Refresh exchanges a valid refresh token for a new pair, overwriting the
// stored token. Two racing refreshes are last-write-wins: the loser's pair
// fails on its next rotation, not here.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*model.TokenPair, error) {
	if strings.TrimSpace(presented) == "" {
		return nil, apiError(ErrInvalidInput, "Unauthorized request.")
	}

	userID, err := s.parseToken(presented, s.refreshSecret)
	if err != nil {
		return nil, apiError(err, "Invalid token.")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrTokenInvalid, "Invalid token.")
		}
		return nil, err
	}

	// The presented token must match the stored one byte for byte. A
	// mismatch means it was already rotated or revoked by logout.
	if user.RefreshToken == nil || *user.RefreshToken != presented {
		return nil, apiError(ErrTokenReused, "Token is expired or used.")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return apiError(ErrInvalidInput, "All fields are required.")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return apiError(ErrInvalidInput, "Incorrect old password.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// ResolveAccessToken verifies an access token and loads the identity it
// names, with the password hash and refresh token excluded.
func (s *AuthService) ResolveAccessToken(ctx context.Context, token string) (*model.PublicUser, error) {
	userID, err := s.ParseAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrTokenInvalid, "Invalid access token.")
		}
		return nil, err
	}
	return user.Public(), nil
}

// ParseAccessToken checks signature and expiry and returns the subject.
// An access token's validity depends only on these; it is stateless.
func (s *AuthService) ParseAccessToken(token string) (string, error) {
	return s.parseToken(token, s.accessSecret)
}

func (s *AuthService) parseToken(tokenStr string, secret []byte) (string, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// issueTokens signs a new pair and persists the refresh token, which
// invalidates whatever refresh token was stored before.
func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (model.TokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) generateAccessToken(user *model.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserName: user.UserName,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
}

func (s *AuthService) generateRefreshToken(user *model.User) (string, error) {
	// The jti keeps consecutive tokens distinct even within the same
	// second, so rotation always replaces the stored value.
	now := time.Now()
	claims := refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
}

func parseBool(value string, fallback bool) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, err
	}
	return parsed, nil
}

func parseSameSite(value string) (http.SameSite, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, ErrInvalidInput
	}
}
