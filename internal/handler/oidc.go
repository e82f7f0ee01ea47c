package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/service"
)

const oidcStateCookie = "OIDCState"

type OIDCHandler struct {
	oidc *service.OIDCService
	auth *service.AuthService
}

func NewOIDCHandler(oidc *service.OIDCService, auth *service.AuthService) *OIDCHandler {
	return &OIDCHandler{oidc: oidc, auth: auth}
}

// Login godoc
// @Summary Start the OIDC login flow
// @Description Redirects to the identity provider's authorization endpoint.
// @Tags users
// @Success 302
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/oidc/login [get]
func (h *OIDCHandler) Login(c *gin.Context) {
	state, err := service.NewState()
	if err != nil {
		respondError(c, err)
		return
	}

	cfg := h.auth.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(oidcStateCookie, state, 300, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.Redirect(http.StatusFound, h.oidc.AuthCodeURL(state))
}

// Callback godoc
// @Summary Complete the OIDC login flow
// @Description Verifies the ID token, matches or provisions a local user and issues a session.
// @Tags users
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/oidc/callback [get]
func (h *OIDCHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(oidcStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		respondError(c, service.NewError(service.ErrUnauthorized, "Invalid state."))
		return
	}

	cfg := h.auth.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(oidcStateCookie, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)

	result, svcErr := h.oidc.HandleCallback(c.Request.Context(), c.Query("code"))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.SetCookie(service.AccessCookieName, result.AccessToken, cfg.AccessMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.SetCookie(service.RefreshCookieName, result.RefreshToken, cfg.RefreshMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
	respond(c, http.StatusOK, result, "User logged in successfully.")
}
