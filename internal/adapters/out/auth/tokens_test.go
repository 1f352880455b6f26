package auth_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/adapters/out/auth"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "logistics"
	testAudience = "logistics-web"
	testSecret   = "a-test-secret-that-is-long-enough-for-hs256"
)

func newService(t *testing.T) *auth.TokenService {
	t.Helper()
	s, err := auth.NewTokenService(auth.TokenConfig{
		Issuer:   testIssuer,
		Audience: testAudience,
		Secret:   testSecret,
		TTL:      30 * time.Minute,
	})
	require.NoError(t, err)
	return s
}

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Ana", "a@test.com", "hash")
	require.NoError(t, err)
	return u
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims auth.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(subject string) auth.Claims {
	now := time.Now()
	return auth.Claims{
		Email: "a@test.com",
		Name:  "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := auth.NewTokenService(auth.TokenConfig{Issuer: testIssuer, Audience: testAudience})
	require.ErrorIs(t, err, auth.ErrSecretIsRequired)
}

func TestTokenService_IssueThenVerify(t *testing.T) {
	s := newService(t)
	u := newUser(t)

	issued, err := s.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), issued.ExpiresAt, 5*time.Second)

	principal, err := s.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID().String(), principal.Subject)
	assert.Equal(t, "a@test.com", principal.Email)
	assert.Equal(t, "Ana", principal.Name)
}

func TestTokenService_Issue_CarriesUniqueTokenID(t *testing.T) {
	s := newService(t)
	u := newUser(t)

	first, err := s.Issue(u)
	require.NoError(t, err)
	second, err := s.Issue(u)
	require.NoError(t, err)

	parse := func(token string) auth.Claims {
		var claims auth.Claims
		_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
		require.NoError(t, err)
		return claims
	}

	c1, c2 := parse(first.Token), parse(second.Token)
	assert.NotEmpty(t, c1.ID)
	assert.NotEqual(t, c1.ID, c2.ID)
	assert.Equal(t, testIssuer, c1.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testAudience}, c1.Audience)
	assert.NotNil(t, c1.IssuedAt)
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	s := newService(t)
	subject := newUser(t).ID().String()

	expired := validClaims(subject)
	expired.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noExpiry := validClaims(subject)
	noExpiry.ExpiresAt = nil

	wrongAudience := validClaims(subject)
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

	wrongIssuer := validClaims(subject)
	wrongIssuer.Issuer = "someone-else"

	good := sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(subject))
	tampered := good[:strings.LastIndex(good, ".")] + ".AAAA"

	tests := map[string]string{
		"garbage":        "not-a-token",
		"tampered":       tampered,
		"other secret":   sign(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(subject)),
		"HS512":          sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(subject)),
		"expired":        sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"no expiry":      sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
		"wrong audience": sign(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAudience),
		"wrong issuer":   sign(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer),
		"no subject":     sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("")),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(token)

			require.ErrorIs(t, err, errs.ErrUnauthorized)
			assert.Equal(t, "invalid or expired token", err.Error())
		})
	}
}

func TestTokenService_Verify_ToleratesClockSkew(t *testing.T) {
	s := newService(t)
	claims := validClaims(newUser(t).ID().String())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	_, err := s.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))

	require.NoError(t, err)
}
