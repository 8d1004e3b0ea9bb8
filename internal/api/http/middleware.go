package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"foodcourt/internal/service"
)

type contextKey string

const (
	userContextKey      contextKey = "user_id"
	requestIDContextKey contextKey = "request_id"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every request with an id, honoring one sent
// by the caller, and logs the request with it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Info("request")

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware authenticates the bearer token and stores the acting
// user's id in the request context. Handlers never read a user id from
// the request payload.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized: missing token")
				return
			}

			claims := &service.Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				respondError(w, http.StatusUnauthorized, "unauthorized: invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticatedUserID(r *http.Request) (int, error) {
	userID, ok := r.Context().Value(userContextKey).(int)
	if !ok {
		return 0, errors.New("no user in context")
	}
	return userID, nil
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
