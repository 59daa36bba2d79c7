package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateSessionToken mints the opaque session token stored in the session
// state after a successful login.
//
// With a non-empty sign key the token is an HS256 JWT carrying the issuer,
// the issue time, and a unique jti claim. The rest of the application never
// inspects it; session validity is judged from the persisted activity
// timestamp, not from token claims. When no sign key is configured (or
// signing fails) a plain UUID serves as the token, which is just as opaque.
func GenerateSessionToken(issuer, signKey string, now time.Time) string {
	if signKey == "" {
		return uuid.NewString()
	}

	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(now),
		ID:       uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return uuid.NewString()
	}

	return signed
}

// ValidateSessionToken reports whether token is a session token minted by
// this installation: signature and issuer must match. Tokens minted without
// a sign key (plain UUIDs) never validate; callers treat that as an
// unsigned-token installation and skip the check.
func ValidateSessionToken(token, signKey, issuer string) bool {
	if signKey == "" {
		return false
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))

	return err == nil && parsed.Valid
}
