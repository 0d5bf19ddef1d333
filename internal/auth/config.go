package auth

import (
	"fmt"
	"time"
)

const defaultIssuer = "team-planner-backend"

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string
}

// ValidateConfig checks the config and fills the optional fields
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 24 * time.Hour
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	return nil
}
