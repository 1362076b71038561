package config

import "os"

type JwtConfig struct {
	// Secret signs and verifies service-to-service tokens. Empty disables
	// the auth middleware.
	Secret string
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret: os.Getenv("JWT_SECRET"),
	}
}
