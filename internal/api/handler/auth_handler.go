package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexline/accounts-api/internal/api/metrics"
	"github.com/nexline/accounts-api/internal/core/domain"
	"github.com/nexline/accounts-api/internal/core/ports"
)

// LoginLimiter throttles login attempts per identity.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
	limiter     LoginLimiter
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, limiter: limiter}
}

// Signup registers a new user and returns a fresh bearer token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Roles:       req.Roles,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.SignupsTotal.WithLabelValues("ok").Inc()

	return h.respondWithToken(c, user)
}

// Login verifies credentials and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.limiter != nil {
		ok, err := h.limiter.Allow(c.Request().Context(), req.Email)
		if err == nil && !ok {
			metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		}
		// A limiter outage must not lock everyone out; fall through.
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return h.respondWithToken(c, user)
}

func (h *AuthHandler) respondWithToken(c echo.Context, user *domain.User) error {
	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.Inc()

	return c.JSON(http.StatusOK, tokenResponse{
		Token:     token,
		ExpiresIn: int64(h.tokens.Lifetime().Seconds()),
	})
}
