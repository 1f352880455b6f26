package auth

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultTokenTTL   = 60 * time.Minute
	DefaultClockSkew  = 2 * time.Minute
	invalidTokenError = "invalid or expired token"
)

var ErrSecretIsRequired = errors.New("jwt secret is required")

type TokenConfig struct {
	Issuer   string
	Audience string
	Secret   string
	TTL      time.Duration // defaults to DefaultTokenTTL
}

// Claims is the payload of a session token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller extracted from a verified token.
type Principal struct {
	Subject string
	Email   string
	Name    string
}

type TokenService struct {
	issuer   string
	audience string
	secret   []byte
	ttl      time.Duration
	parser   *jwt.Parser
}

var _ ports.TokenIssuer = (*TokenService)(nil)

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretIsRequired
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(DefaultClockSkew),
		),
	}, nil
}

// Issue signs a token for u that expires after the configured TTL.
func (s *TokenService) Issue(u *user.User) (ports.IssuedToken, error) {
	if err := u.Validate(); err != nil {
		return ports.IssuedToken{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Email: u.Email(),
		Name:  u.Name(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID().String(),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}

	return ports.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify returns errs.UnauthorizedError for any token that is malformed, tampered
// with, expired or minted for another issuer or audience.
func (s *TokenService) Verify(token string) (Principal, error) {
	var claims Claims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause(invalidTokenError, err)
	}

	if !parsed.Valid || claims.Subject == "" {
		return Principal{}, errs.NewUnauthorizedError(invalidTokenError)
	}

	return Principal{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
