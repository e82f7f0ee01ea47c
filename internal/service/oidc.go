package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/vidstream/backend/internal/config"
	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

// OIDCService exchanges an identity provider login for a local session.
// It matches users by the verified email claim and provisions an account
// on first login.
type OIDCService struct {
	verifier *oidc.IDTokenVerifier
	oauthCfg oauth2.Config
	users    UserStore
	auth     *AuthService
}

type oidcClaims struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Picture           string `json:"picture"`
}

// NewOIDCService returns nil (and no error) when OIDC is not configured.
func NewOIDCService(ctx context.Context, cfg config.OIDCConfig, users UserStore, auth *AuthService) (*OIDCService, error) {
	if cfg.Issuer == "" {
		return nil, nil
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURL == "" {
		return nil, fmt.Errorf("%w: OIDC_CLIENT_ID/OIDC_CLIENT_SECRET/OIDC_REDIRECT_URL are required", ErrMisconfigured)
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &OIDCService{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauthCfg: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		users: users,
		auth:  auth,
	}, nil
}

// AuthCodeURL starts the code flow. The returned state must round-trip
// through the callback.
func (s *OIDCService) AuthCodeURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state)
}

// NewState returns an unguessable state value for the code flow.
func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HandleCallback finishes the code flow and issues a local token pair.
func (s *OIDCService) HandleCallback(ctx context.Context, code string) (*model.LoginResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apiError(ErrInvalidInput, "Missing authorization code.")
	}

	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, apiError(ErrUnauthorized, "Authorization code exchange failed.")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, apiError(ErrUnauthorized, "Identity provider returned no ID token.")
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, apiError(ErrUnauthorized, "Invalid ID token.")
	}

	var claims oidcClaims
	if err := idToken.Claims(&claims); err != nil || claims.Email == "" {
		return nil, apiError(ErrUnauthorized, "ID token carries no email.")
	}

	user, err := s.users.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if !db.IsNoRows(err) {
			return nil, err
		}
		user, err = s.provision(ctx, claims)
		if err != nil {
			return nil, err
		}
	}

	pair, err := s.auth.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		User:         user.Public(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// provision creates a local account for a first OIDC login. The password
// hash is random; such accounts authenticate through the provider only.
func (s *OIDCService) provision(ctx context.Context, claims oidcClaims) (*model.User, error) {
	userName := strings.ToLower(claims.PreferredUsername)
	if userName == "" {
		userName = strings.ToLower(strings.SplitN(claims.Email, "@", 2)[0])
	}

	if _, err := s.users.GetUserByUserName(ctx, userName); err == nil {
		userName = userName + "-" + uuid.NewString()[:8]
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	fullName := claims.Name
	if fullName == "" {
		fullName = userName
	}

	randomSecret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(randomSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, userName, claims.Email, fullName, string(hash), claims.Picture, "")
}
