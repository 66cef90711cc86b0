package domain

import jsoniter "github.com/json-iterator/go"

// Consultant é o vendedor com credenciais de acesso e totais cacheados.
// TotalSales e TotalCommission são valores de carga inicial e nunca são recalculados a partir das vendas.
type Consultant struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"-"`
	Active          bool    `json:"active"`
	TotalSales      int     `json:"totalSales"`
	TotalCommission float64 `json:"totalCommission"`
	Avatar          *string `json:"avatar,omitempty"`
}

// consultantJSON mantém o par active/isActive que o frontend ainda lê
type consultantJSON struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Active          bool    `json:"active"`
	IsActive        bool    `json:"isActive"`
	TotalSales      int     `json:"totalSales"`
	TotalCommission float64 `json:"totalCommission"`
	Avatar          *string `json:"avatar,omitempty"`
}

func (c Consultant) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(consultantJSON{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Active:          c.Active,
		IsActive:        c.Active,
		TotalSales:      c.TotalSales,
		TotalCommission: c.TotalCommission,
		Avatar:          c.Avatar,
	})
}

// ConsultantOption é a forma resumida usada na tela de login
type ConsultantOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateConsultantRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,notblank"`
}
