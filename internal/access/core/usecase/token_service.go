package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "chat-analytics"

// Claims identifies the signed-in builder user.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService signs and validates HS256 session tokens. Safe for concurrent use.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenService(secret string, expiration time.Duration) *TokenService {
	if expiration == 0 {
		expiration = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), expiration: expiration}
}

// Issue mints a token for userID.
func (s *TokenService) Issue(userID string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiration)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
