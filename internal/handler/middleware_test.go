package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/config"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]*model.User
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.RefreshToken = token
	return nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	return nil
}

func newTestAuthService(t *testing.T) (*service.AuthService, *fakeUserStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	store := &fakeUserStore{users: map[string]*model.User{
		"u1": {
			ID:           "u1",
			UserName:     "alice",
			Email:        "alice@example.com",
			FullName:     "Alice Example",
			PasswordHash: string(hash),
		},
	}}

	auth, err := service.NewAuthService(store, config.AuthConfig{
		AccessTokenSecret:  "access-secret",
		AccessTokenExpiry:  "15m",
		RefreshTokenSecret: "refresh-secret",
		RefreshTokenExpiry: "240h",
		CookieSecure:       "false",
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return auth, store
}

func newProtectedRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth, _ := newTestAuthService(t)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(auth), func(c *gin.Context) {
		respond(c, http.StatusOK, GetAuthUser(c), "ok")
	})
	return r, auth
}

func loginToken(t *testing.T, auth *service.AuthService) *model.LoginResult {
	t.Helper()
	result, err := auth.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return result
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r, _ := newProtectedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Status != http.StatusUnauthorized || body.Data != nil {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if body.Errors == nil || len(body.Errors) != 0 {
		t.Fatalf("errors should be an empty array, got %v", body.Errors)
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	r, auth := newProtectedRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: result.AccessToken})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareAcceptsBearerHeader(t *testing.T) {
	r, auth := newProtectedRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+result.AccessToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareCookieWinsOverHeader(t *testing.T) {
	r, auth := newProtectedRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: "garbage"})
	req.Header.Set("Authorization", "Bearer "+result.AccessToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected cookie to take precedence, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsTamperedToken(t *testing.T) {
	r, auth := newProtectedRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: result.AccessToken + "x"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
