package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

func newUserRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth, _ := newTestAuthService(t)
	h := NewUserHandler(nil, auth)

	r := gin.New()
	r.POST("/api/v1/users/login", h.Login)
	r.POST("/api/v1/users/refresh-token", h.RefreshToken)
	r.POST("/api/v1/users/logout", AuthMiddleware(auth), h.Logout)
	r.GET("/api/v1/users/current-user", AuthMiddleware(auth), h.CurrentUser)
	return r, auth
}

func cookieValue(t *testing.T, w *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	t.Fatalf("cookie %s not set", name)
	return ""
}

func TestLoginSetsAuthCookies(t *testing.T) {
	r, _ := newUserRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"email":"alice@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "User logged in successfully." {
		t.Fatalf("unexpected envelope: %+v", body)
	}

	for _, name := range []string{service.AccessCookieName, service.RefreshCookieName} {
		found := false
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == name {
				found = true
				if !cookie.HttpOnly {
					t.Fatalf("%s cookie must be HttpOnly", name)
				}
			}
		}
		if !found {
			t.Fatalf("cookie %s not set", name)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newUserRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"email":"alice@example.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Message != "Invalid user credentials." {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestRefreshRotatesTokenOverHTTP(t *testing.T) {
	r, auth := newUserRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: service.RefreshCookieName, Value: result.RefreshToken})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rotated := cookieValue(t, w, service.RefreshCookieName)
	if rotated == result.RefreshToken {
		t.Fatalf("refresh cookie was not rotated")
	}

	// The pre-rotation token answers an opaque 401.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: service.RefreshCookieName, Value: result.RefreshToken})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on reuse, got %d", w.Code)
	}

	var body model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Token is expired or used." {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestRefreshAcceptsBodyToken(t *testing.T) {
	r, auth := newUserRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token",
		strings.NewReader(`{"RefreshToken":"`+result.RefreshToken+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutClearsCookiesAndRevokesRefresh(t *testing.T) {
	r, auth := newUserRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: result.AccessToken})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == service.AccessCookieName || cookie.Name == service.RefreshCookieName {
			if cookie.Value != "" && cookie.MaxAge >= 0 {
				t.Fatalf("cookie %s not cleared", cookie.Name)
			}
		}
	}

	// Access tokens stay stateless and valid until expiry; the refresh
	// token is revoked immediately.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: service.RefreshCookieName, Value: result.RefreshToken})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestCurrentUserReturnsProfile(t *testing.T) {
	r, auth := newUserRouter(t)
	result := loginToken(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: result.AccessToken})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"userName":"alice"`) {
		t.Fatalf("profile missing from body: %s", w.Body.String())
	}
}
