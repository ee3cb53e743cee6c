package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// RoleAdmin is the only role allowed to mutate categories and questions.
const RoleAdmin = "admin"

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrMissingSecret   = errors.New("jwt secret is not configured")
)

// AuthService issues and validates admin access tokens.
type AuthService interface {
	CreateJWT(ctx context.Context, subject string, ttl time.Duration) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
	issuer string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.Role != RoleAdmin {
		return nil, fmt.Errorf("%w: role %q is not allowed", ErrInvalidJWTToken, claims.Role)
	}
	return claims, nil
}
