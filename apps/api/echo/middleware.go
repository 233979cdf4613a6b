package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// requireClaims lets the request through when allow accepts the token claims.
func requireClaims(allow func(ctx echo.Context, claims Claims) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if !allow(ctx, claims) {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}

// adminMiddleware requires an admin holding any of roles (any admin when none is given).
func adminMiddleware(roles ...string) echo.MiddlewareFunc {
	return requireClaims(func(ctx echo.Context, claims Claims) bool {
		return claims.IsAdmin && contextHasAnyRole(ctx, roles)
	})
}

// staffMiddleware requires a teacher or an admin.
func staffMiddleware() echo.MiddlewareFunc {
	return requireClaims(func(_ echo.Context, claims Claims) bool {
		return claims.IsTeacher || claims.IsAdmin
	})
}
