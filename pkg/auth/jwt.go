package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "onewin"

type JWTServiceInterface interface {
	GenerateJWT(userID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname,omitempty"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(userID string, expirationTime time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("user id cannot be empty")
	}
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
