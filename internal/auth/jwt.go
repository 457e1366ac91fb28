package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"webshop/internal/domain"
)

// TokenTTL is how long a minted token stays valid. There is no revocation;
// a token is good until it expires.
const TokenTTL = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
}

func Mint(username string, userID int64, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Username: username,
		UserID:   userID,
	})
	return token.SignedString(secret)
}

// Verify checks signature and expiry. Only HS256 is accepted; a token signed
// with any other method fails even if its signature would check out.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
