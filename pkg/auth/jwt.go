package auth

import (
	"errors"
	"strings"
	"time"

	"balatro-spectator/internal/config"
	appErr "balatro-spectator/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

const ScopeSpectator = "spectator"

// Claims identify an API client such as a stream overlay or bot.
type Claims struct {
	Client string `json:"client"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

func GenerateToken(client string) (string, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return "", appErr.ErrEmptyClientName
	}

	duration := time.Duration(config.GlobalConfig.JWT.Expire) * time.Hour
	now := time.Now()
	claims := Claims{
		Client: client,
		Scope:  ScopeSpectator,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   client,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GlobalConfig.JWT.Secret))
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Scope != ScopeSpectator {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
