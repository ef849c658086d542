package auth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"dispatch/internal/entities"
	"dispatch/pkg/token"
)

type ctxKey struct{}

type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Middleware authenticates requests with a bearer token and stores the
// resolved caller in the request context. Requests without a valid token are
// rejected with 401 before reaching the handler.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			caller := entities.Caller{
				AccountID: accountID,
				Username:  claims.Username,
				Role:      entities.RoleType(claims.Role),
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, caller)
}

func CallerFromContext(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(ctxKey{}).(entities.Caller)
	return caller, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return raw, raw != ""
}
