package domain

import (
	"strings"
	"time"
)

// Date representa uma data de calendário, sem horário, sempre normalizada para meia-noite UTC
type Date struct {
	time.Time
}

// NewDate extrai o dia de calendário de t no fuso do próprio t
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// AddDays soma n dias (n pode ser negativo)
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// AddMonths soma n meses; dias que não existem no mês de destino transbordam para o mês seguinte
func (d Date) AddMonths(n int) Date {
	return Date{Time: d.AddDate(0, n, 0)}
}

// FirstOfMonth retorna o primeiro dia do mês de d
func (d Date) FirstOfMonth() Date {
	return Date{Time: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// OnOrAfter indica se d é igual ou posterior a other
func (d Date) OnOrAfter(other Date) bool {
	return !d.Time.Before(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// MarshalCSV é usado pelo gocsv na exportação de vendas
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}
