package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yeremiapane/table-order-app/config"
)

// CustomClaims mengikat token ke identitas phone yang sudah terverifikasi.
type CustomClaims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// GenerateToken membuat access token HS256 untuk phone dengan masa
// berlaku ttl. ttl <= 0 memakai default dari konfigurasi (15 menit).
func GenerateToken(phone string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = config.Get().TokenTTL
	}

	claims := &CustomClaims{
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "TableOrderApp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Get().JWTSecret))
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Get().JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.Phone == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
