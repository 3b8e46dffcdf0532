package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexline/accounts-api/internal/api/metrics"
	"github.com/nexline/accounts-api/internal/core/domain"
	"github.com/nexline/accounts-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Authenticate stores the
// resolved *domain.User.
const UserContextKey = "auth_user"

// Authenticate resolves the bearer token into a user identity. It never
// blocks the chain: requests without a usable token continue unauthenticated
// and are rejected later by RequireAuth on protected routes.
//
// Flow per request: read the Authorization header; on a Bearer token, extract
// the subject (signature check only), load the user by email, and run the
// full validation (signature + expiry + subject match). Only then is the
// identity attached to the echo context and the request context.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}
			token := parts[1]

			if _, already := c.Get(UserContextKey).(*domain.User); already {
				return next(c)
			}

			subject, err := tokens.ExtractSubject(token)
			if err != nil {
				log.Debug().Str("path", c.Path()).Msg("unparseable bearer token")
				metrics.AuthFailuresTotal.WithLabelValues("malformed_token").Inc()
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrResourceNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
					return next(c)
				}
				// A store failure is not a bad token; surface it instead of
				// silently degrading the request to unauthenticated.
				return err
			}

			if !tokens.IsValid(token, user) {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return next(c)
			}

			c.Set(UserContextKey, user)
			req := c.Request()
			c.SetRequest(req.WithContext(domain.WithUser(req.Context(), user)))

			return next(c)
		}
	}
}

// RequireAuth rejects requests that reach it without an established identity.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(UserContextKey).(*domain.User); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			}
			return next(c)
		}
	}
}

// RequireRole admits authenticated users holding at least one of the allowed
// roles; everyone else gets 403.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			}
			for _, role := range allowedRoles {
				if user.HasRole(role) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
		}
	}
}
