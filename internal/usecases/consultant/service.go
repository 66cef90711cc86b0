package consultant

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
	"github.com/victin77/dashboard-love/pkg/utils"
)

const emailDomain = "@comissoes.com"

type Registry interface {
	ListConsultants() []domain.Consultant
	ListActiveConsultants() []domain.ConsultantOption
	GetConsultant(id string) (*domain.Consultant, error)
	AddConsultant(name, password string) domain.Consultant
	RemoveConsultant(id string) bool
	UpdateConsultantPassword(id, newPassword string) bool
	ToggleConsultantStatus(id string) bool
}

type Service struct {
	consultantRepo repository.ConsultantRepository
	now            func() time.Time

	// serializa a escolha do id com a inserção
	addMutex sync.Mutex
}

func NewService(consultantRepo repository.ConsultantRepository, now func() time.Time) Registry {
	if now == nil {
		now = time.Now
	}

	return &Service{
		consultantRepo: consultantRepo,
		now:            now,
	}
}

func (s *Service) ListConsultants() []domain.Consultant {
	return s.consultantRepo.ListConsultants()
}

// ListActiveConsultants devolve id e nome dos consultores que podem fazer login
func (s *Service) ListActiveConsultants() []domain.ConsultantOption {
	consultants := s.consultantRepo.ListConsultants()

	options := make([]domain.ConsultantOption, 0, len(consultants))
	for _, consultant := range consultants {
		if !consultant.Active {
			continue
		}
		options = append(options, domain.ConsultantOption{ID: consultant.ID, Name: consultant.Name})
	}

	return options
}

func (s *Service) GetConsultant(id string) (*domain.Consultant, error) {
	if id == "" {
		return nil, NewConsultantError(ErrConsultantIDRequired, apiErrors.ErrMissingRequiredData, "ID do consultor é obrigatório")
	}

	consultant, found := s.consultantRepo.GetConsultantByID(id)
	if !found {
		return nil, NewConsultantErrorWithID(ErrConsultantNotFound, apiErrors.ErrConsultantNotFound, id, "Consultor não encontrado")
	}

	return consultant, nil
}

// AddConsultant cadastra um consultor ativo com totais zerados.
// Nome e senha não são validados aqui; a validação fica na camada HTTP.
func (s *Service) AddConsultant(name, password string) domain.Consultant {
	s.addMutex.Lock()
	defer s.addMutex.Unlock()

	consultant := domain.Consultant{
		ID:       s.nextID(),
		Name:     name,
		Email:    EmailFromName(name),
		Password: password,
		Active:   true,
	}

	created := s.consultantRepo.CreateConsultant(consultant)

	logrus.WithFields(logrus.Fields{
		"consultant_id": created.ID,
		"email":         created.Email,
	}).Info("Consultor cadastrado")

	return created
}

func (s *Service) RemoveConsultant(id string) bool {
	removed := s.consultantRepo.DeleteConsultant(id)
	if removed {
		logrus.WithField("consultant_id", id).Info("Consultor removido")
	}
	return removed
}

func (s *Service) UpdateConsultantPassword(id, newPassword string) bool {
	return s.consultantRepo.UpdateConsultant(id, func(c *domain.Consultant) {
		c.Password = newPassword
	})
}

func (s *Service) ToggleConsultantStatus(id string) bool {
	return s.consultantRepo.UpdateConsultant(id, func(c *domain.Consultant) {
		c.Active = !c.Active
	})
}

// nextID usa o instante atual em milissegundos; só recebe sufixo se o id já existir
func (s *Service) nextID() string {
	base := strconv.FormatInt(s.now().UnixMilli(), 10)

	id := base
	for attempt := 1; s.exists(id); attempt++ {
		suffix, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Warn("Falha ao gerar sufixo do id, usando contador")
			suffix = strconv.Itoa(attempt)
		}
		id = fmt.Sprintf("%s-%s", base, suffix)
	}

	return id
}

func (s *Service) exists(id string) bool {
	_, found := s.consultantRepo.GetConsultantByID(id)
	return found
}

// EmailFromName monta o email a partir do nome em minúsculas, sem espaços
func EmailFromName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "") + emailDomain
}
