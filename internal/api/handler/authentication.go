package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/internal/usecases/authenticating"
	"github.com/victin77/dashboard-love/internal/usecases/consultant"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
	"github.com/victin77/dashboard-love/pkg/middleware"
)

type LoginResponse struct {
	Token string          `json:"token"`
	User  *domain.Session `json:"user"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, session, err := service.Login(req)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: session})
	}
}

// LoginConsultants lista os consultores ativos para o seletor da tela de login
func LoginConsultants(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, registry.ListActiveConsultants())
	}
}

// GetMe devolve a sessão do token
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, claims.Session())
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	if authenticating.IsCredentialsError(err) {
		logrus.WithError(err).Warn("Login recusado")
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.ConsultantID != "" {
			details = map[string]any{"consultantId": authErr.ConsultantID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
