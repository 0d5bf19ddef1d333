package auth

import (
	"fmt"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService issues and validates bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id" example:"9b2f6c1e-2a4d-4c55-8f0e-0d6f3f1b2a11"`
	Email                string    `json:"email" example:"mia@example.com"`
	Name                 string    `json:"name" example:"Mia"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenRequest represents the request for dev token issuance
type TokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"mia@example.com"`
}

// TokenResponse represents an issued bearer token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresIn   int64     `json:"expires_in" example:"86400"`
	UserID      uuid.UUID `json:"user_id"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateToken creates an HS256 token for the user
func (s *AuthService) GenerateToken(user *models.User) (*TokenResponse, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		UserID:      user.ID,
	}, nil
}

// ValidateToken validates and parses a token
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
