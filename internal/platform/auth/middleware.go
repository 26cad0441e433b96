package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthhub/healthhub/internal/platform/apperr"
)

// PrincipalSource resolves a token subject to a live principal. It is
// implemented by an adapter over the identity service, wired in main, so the
// auth package does not import domain packages.
type PrincipalSource interface {
	PrincipalByID(ctx context.Context, id uuid.UUID) (Principal, error)
}

// Middleware authenticates bearer tokens and attaches the principal to the
// request context. The principal is loaded fresh per request so a deleted
// account cannot keep using an old token.
func Middleware(issuer *TokenIssuer, source PrincipalSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return apperr.Unauthenticated("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return apperr.Unauthenticated("invalid authorization format")
			}

			claims, err := issuer.Parse(parts[1])
			if err != nil {
				return apperr.Unauthenticated("invalid or expired token")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return apperr.Unauthenticated("invalid token subject")
			}

			principal, err := source.PrincipalByID(c.Request().Context(), userID)
			if err != nil {
				return apperr.Unauthenticated("user not found")
			}

			ctx := WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole returns middleware that checks if the principal holds one of
// the given roles. Admin always passes.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFromContext(c.Request().Context())
			if !ok {
				return apperr.Unauthenticated("missing authorization header")
			}
			if p.Role == RoleAdmin {
				return next(c)
			}
			for _, required := range roles {
				if p.Role == required {
					return next(c)
				}
			}
			return apperr.Forbidden("Not authorized")
		}
	}
}
