package authenticating

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/internal/config"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
)

const (
	adminUserName   = "Administrador"
	defaultTokenTTL = 24 * time.Hour
)

type Authenticator interface {
	Login(request domain.LoginRequest) (string, *domain.Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	consultantRepo repository.ConsultantRepository
	cfg            *config.Config
	now            func() time.Time
}

func NewService(consultantRepo repository.ConsultantRepository, cfg *config.Config, now func() time.Time) Authenticator {
	if now == nil {
		now = time.Now
	}

	return &Service{
		consultantRepo: consultantRepo,
		cfg:            cfg,
		now:            now,
	}
}

// Login confere a senha em texto puro. O administrador usa a senha configurada;
// o consultor usa a senha cadastrada e precisa estar ativo.
func (s *Service) Login(request domain.LoginRequest) (string, *domain.Session, error) {
	if request.Password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	var session domain.Session

	switch request.Role {
	case domain.RoleAdmin:
		if request.Password != s.cfg.Auth.AdminPassword {
			return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
		}

		session = domain.Session{Role: domain.RoleAdmin, UserName: adminUserName}

	case domain.RoleConsultant:
		consultant, found := s.consultantRepo.GetConsultantByID(request.ConsultantID)
		if !found || consultant.Password != request.Password {
			return "", nil, NewConsultantAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, request.ConsultantID, "Consultor ou senha incorretos")
		}

		if !consultant.Active {
			return "", nil, NewConsultantAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, consultant.ID, "Consultor desativado")
		}

		session = domain.Session{Role: domain.RoleConsultant, UserName: consultant.Name, ConsultantID: consultant.ID}

	default:
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Perfil desconhecido")
	}

	token, err := s.generateJWT(session)
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar token de sessão")
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"role":          session.Role,
		"consultant_id": session.ConsultantID,
	}).Info("Login realizado")

	return token, &session, nil
}

func (s *Service) generateJWT(session domain.Session) (string, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	issuedAt := s.now()
	claims := domain.Claims{
		Role:         session.Role,
		UserName:     session.UserName,
		ConsultantID: session.ConsultantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	if claims.Role == domain.RoleConsultant {
		if err := s.checkConsultantSession(claims.ConsultantID); err != nil {
			return nil, err
		}
	}

	return claims, nil
}

// checkConsultantSession barra tokens de consultores removidos ou desativados depois do login
func (s *Service) checkConsultantSession(consultantID string) error {
	consultant, found := s.consultantRepo.GetConsultantByID(consultantID)
	if !found {
		return NewConsultantAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, consultantID, "Consultor não existe mais")
	}

	if !consultant.Active {
		return NewConsultantAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, consultantID, "Consultor desativado")
	}

	return nil
}
