package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/unbroken/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(account *entity.Account) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}
