package model

// TokenPair is one session's access/refresh token set. Neither token is
// persisted as its own entity; the refresh token is mirrored on the user
// row for revocation checking.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is the login/OIDC-callback payload.
type LoginResult struct {
	User         *PublicUser `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// RefreshRequest carries a refresh token presented in the request body as
// an alternative to the RefreshToken cookie.
type RefreshRequest struct {
	RefreshToken string `json:"RefreshToken"`
}
