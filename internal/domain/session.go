package domain

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleConsultant Role = "consultant"
)

type LoginRequest struct {
	Role         Role   `json:"role" validate:"required,oneof=admin consultant"`
	ConsultantID string `json:"consultantId" validate:"required_if=Role consultant"`
	Password     string `json:"password" validate:"required"`
}

// Session é o usuário autenticado devolvido no login
type Session struct {
	Role         Role   `json:"role"`
	UserName     string `json:"userName"`
	ConsultantID string `json:"consultantId,omitempty"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Claims é o conteúdo do token de sessão
type Claims struct {
	Role         Role   `json:"role"`
	UserName     string `json:"userName"`
	ConsultantID string `json:"consultantId,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Session() Session {
	return Session{
		Role:         c.Role,
		UserName:     c.UserName,
		ConsultantID: c.ConsultantID,
	}
}
