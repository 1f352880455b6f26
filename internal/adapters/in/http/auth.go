package http

import (
	"strings"

	"logistics/internal/adapters/out/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	principalContextKey = "principal"
	accessTokenParam    = "access_token"
)

var errMissingToken = errs.NewUnauthorizedError("missing bearer token")

type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// BearerAuth rejects requests without a valid Authorization: Bearer token and stores
// the caller in the echo context.
func BearerAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return tokenAuth(verifier, false)
}

// HubAuth is BearerAuth that also accepts the token in the access_token query
// parameter.
func HubAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return tokenAuth(verifier, true)
}

func tokenAuth(verifier TokenVerifier, allowQuery bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" && allowQuery {
				token = c.QueryParam(accessTokenParam)
			}
			if token == "" {
				return errMissingToken
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				return err
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

func extractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func principalFrom(c echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(principalContextKey).(auth.Principal)
	return p, ok
}

// actorID is the id of the authenticated caller. Tokens whose subject is not a user
// id are treated as invalid.
func actorID(c echo.Context) (kernel.UUID, error) {
	p, ok := principalFrom(c)
	if !ok {
		return kernel.UUID{}, errMissingToken
	}

	id, err := kernel.UUIDFromString(p.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("invalid or expired token", err)
	}
	return id, nil
}
