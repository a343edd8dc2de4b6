package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the embedded
	// expiry has passed
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers everything else: bad signature, malformed
	// string, wrong algorithm, missing claims
	ErrTokenInvalid = errors.New("token invalid")
)

// AuthClaims is what gets signed into an auth token. Tokens are not
// stored anywhere, possession of a token with a valid signature and an
// expiry in the future is the whole proof.
type AuthClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// MakeAuthToken signs a HS256 token for userID that expires ttl from now
func MakeAuthToken(userID uint, secret []byte, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})

	return t.SignedString(secret)
}

// ParseAuthToken verifies the signature and expiry of token and returns
// the embedded user ID. Expired tokens come back as ErrTokenExpired,
// every other failure as ErrTokenInvalid.
func ParseAuthToken(token string, secret []byte) (uint, error) {
	claims := &AuthClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}

		return 0, ErrTokenInvalid
	}

	if !parsed.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
