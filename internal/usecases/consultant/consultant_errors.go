package consultant

import (
	"errors"
	"fmt"
)

// Erros específicos do cadastro de consultores
var (
	ErrConsultantIDRequired = errors.New("consultant ID is required")
	ErrConsultantNotFound   = errors.New("consultant not found")
)

// ConsultantError é um erro com contexto adicional para consultores
type ConsultantError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	ConsultantID string
	Details      string
}

func (e *ConsultantError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConsultantError) Unwrap() error {
	return e.Err
}

// NewConsultantError cria um novo ConsultantError
func NewConsultantError(err error, code string, details string) *ConsultantError {
	return &ConsultantError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewConsultantErrorWithID cria um novo ConsultantError com o ID do consultor
func NewConsultantErrorWithID(err error, code string, consultantID string, details string) *ConsultantError {
	return &ConsultantError{
		Err:          err,
		Code:         code,
		ConsultantID: consultantID,
		Details:      details,
	}
}
