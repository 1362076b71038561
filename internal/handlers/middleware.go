package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// MiddlewareProvider guards the judge endpoints for service-to-service
// calls. The platform backend signs a short-lived HMAC token with the shared
// secret; end-user authentication stays in the platform.
type MiddlewareProvider struct {
	SecretOption string
}

func New(secret string) *MiddlewareProvider {
	return &MiddlewareProvider{
		SecretOption: secret,
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.SecretOption)
}

func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return m.secret(), nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
