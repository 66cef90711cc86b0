package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/internal/usecases/authenticating"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	protectedPrefix = "/api/v1/"
)

// rotas da API que não exigem token
var publicPaths = map[string]bool{
	"/api/v1/login":             true,
	"/api/v1/login/consultants": true,
}

// AuthMiddleware exige Bearer token nas rotas /api/v1/, exceto login.
// Health check e arquivos estáticos passam direto.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, protectedPrefix) || publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}

				message := "Token inválido"
				if !authenticating.IsTokenError(err) {
					// token íntegro, mas a sessão não vale mais (consultor desativado)
					message = "Sessão não autorizada"
					logrus.WithError(err).Warn("Sessão recusada")
				}

				apiErrors.WriteError(w, code, message, nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims guarda a sessão autenticada no contexto
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}

// ClaimsFromContext recupera a sessão autenticada do contexto
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
