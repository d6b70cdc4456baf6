// Package auth mints and validates the signed access tokens that gate every
// privileged endpoint. Tokens are stateless: validity is purely a function
// of the HMAC signature and the embedded expiry.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/bistro-boss-server/config"
)

// TokenTTL is the fixed validity window measured from issuance.
const TokenTTL = 4 * time.Hour

// Identity is the claim set supplied at login. Email is the only field the
// authorization chain relies on; the rest is profile data carried through
// for the client's convenience.
type Identity struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"nullable,max=255"`
	Photo string `json:"photo" validate:"nullable,url"`
}

// Claims is the typed JWT payload.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken signs a token carrying the identity claim, expiring
// TokenTTL from now.
func GenerateToken(id Identity) (string, error) {
	return generateTokenAt(id, time.Now())
}

// generateTokenAt exists so expiry behaviour can be tested without waiting
// four hours.
func generateTokenAt(id Identity, now time.Time) (string, error) {
	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		Photo: id.Photo,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and verifies a token string. Any failure (bad
// signature, tampered payload, expiry) comes back as a non-nil error.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
