package userservice

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid authentication token")
)

// Claims is the payload embedded in a bearer token: the owning user's id
// and username alongside the registered expiry fields.
type Claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func signToken(user *User, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(BearerTokenTime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken parses and verifies a bearer token and returns its claims.
// A token that verifies but carries no user id is rejected the same way
// as a malformed one.
func (s *UserService) VerifyToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
