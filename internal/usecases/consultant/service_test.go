package consultant

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victin77/dashboard-love/infrastructure/database/memory"
	"github.com/victin77/dashboard-love/infrastructure/migration"
	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/infrastructure/repository/mocks"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func newSeededService(t *testing.T) (Registry, repository.ConsultantRepository) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, migration.SeedConsultants(store))

	repo := repository.NewConsultantRepository(store)
	return NewService(repo, func() time.Time { return fixedNow }), repo
}

func TestEmailFromName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Nome simples", input: "Ana", expected: "ana@comissoes.com"},
		{name: "Nome composto", input: "Ana Maria", expected: "anamaria@comissoes.com"},
		{name: "Espaços nas bordas e repetidos", input: "  João   Silva ", expected: "joãosilva@comissoes.com"},
		{name: "Tabulação", input: "Carla\tDias", expected: "carladias@comissoes.com"},
		{name: "Nome vazio", input: "", expected: "@comissoes.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmailFromName(tt.input))
		})
	}
}

func TestService_AddConsultant(t *testing.T) {
	service, _ := newSeededService(t)

	created := service.AddConsultant("Ana Maria", "segredo")

	assert.Equal(t, "1718461800000", created.ID)
	assert.Equal(t, "Ana Maria", created.Name)
	assert.Equal(t, "anamaria@comissoes.com", created.Email)
	assert.Equal(t, "segredo", created.Password)
	assert.True(t, created.Active)
	assert.Zero(t, created.TotalSales)
	assert.Zero(t, created.TotalCommission)

	consultants := service.ListConsultants()
	require.Len(t, consultants, 7)
	assert.Equal(t, created, consultants[6])
}

func TestService_AddConsultant_SameMillisecond(t *testing.T) {
	service, _ := newSeededService(t)

	first := service.AddConsultant("Ana", "a")
	second := service.AddConsultant("Bia", "b")

	assert.Equal(t, "1718461800000", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(second.ID, "1718461800000-"))
	assert.Len(t, service.ListConsultants(), 8)
}

func TestService_AddThenRemove(t *testing.T) {
	service, _ := newSeededService(t)
	before := service.ListConsultants()

	created := service.AddConsultant("Temporário", "123")

	assert.True(t, service.RemoveConsultant(created.ID))
	assert.Equal(t, before, service.ListConsultants())
}

func TestService_RemoveConsultant(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		expected  bool
		remaining int
	}{
		{name: "Remove consultor existente", id: "2", expected: true, remaining: 5},
		{name: "Id inexistente não altera nada", id: "999", expected: false, remaining: 6},
		{name: "Id vazio", id: "", expected: false, remaining: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newSeededService(t)

			assert.Equal(t, tt.expected, service.RemoveConsultant(tt.id))
			assert.Len(t, service.ListConsultants(), tt.remaining)
		})
	}
}

func TestService_UpdateConsultantPassword(t *testing.T) {
	service, repo := newSeededService(t)

	assert.True(t, service.UpdateConsultantPassword("1", "nova"))
	consultant, found := repo.GetConsultantByID("1")
	require.True(t, found)
	assert.Equal(t, "nova", consultant.Password)

	assert.False(t, service.UpdateConsultantPassword("999", "nova"))
}

func TestService_ToggleConsultantStatus(t *testing.T) {
	service, repo := newSeededService(t)
	before, _ := repo.GetConsultantByID("4")

	assert.True(t, service.ToggleConsultantStatus("4"))
	toggled, _ := repo.GetConsultantByID("4")
	assert.False(t, toggled.Active)

	assert.True(t, service.ToggleConsultantStatus("4"))
	after, _ := repo.GetConsultantByID("4")
	assert.Equal(t, before, after)

	assert.False(t, service.ToggleConsultantStatus("999"))
}

func TestService_ListActiveConsultants(t *testing.T) {
	service, _ := newSeededService(t)

	service.ToggleConsultantStatus("2")
	service.ToggleConsultantStatus("5")

	assert.Equal(t, []domain.ConsultantOption{
		{ID: "1", Name: "Graziele"},
		{ID: "3", Name: "Pedro"},
		{ID: "4", Name: "Poli"},
		{ID: "6", Name: "Victor"},
	}, service.ListActiveConsultants())
}

func TestService_GetConsultant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockConsultantRepository(ctrl)
	service := NewService(mockRepo, nil)

	tests := []struct {
		name         string
		id           string
		setup        func()
		expectedErr  error
		expectedCode string
	}{
		{
			name: "Consultor encontrado",
			id:   "1",
			setup: func() {
				mockRepo.EXPECT().GetConsultantByID("1").Return(&domain.Consultant{ID: "1", Name: "Graziele"}, true)
			},
		},
		{
			name: "Consultor inexistente",
			id:   "999",
			setup: func() {
				mockRepo.EXPECT().GetConsultantByID("999").Return(nil, false)
			},
			expectedErr:  ErrConsultantNotFound,
			expectedCode: apiErrors.ErrConsultantNotFound,
		},
		{
			name:         "Id vazio",
			id:           "",
			setup:        func() {},
			expectedErr:  ErrConsultantIDRequired,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			consultant, err := service.GetConsultant(tt.id)

			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.id, consultant.ID)
				return
			}

			assert.Nil(t, consultant)
			assert.True(t, errors.Is(err, tt.expectedErr))

			var consultantErr *ConsultantError
			require.True(t, errors.As(err, &consultantErr))
			assert.Equal(t, tt.expectedCode, consultantErr.Code)
		})
	}
}

func TestService_ToggleUsesRepositoryUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockConsultantRepository(ctrl)
	consultant := &domain.Consultant{ID: "1", Active: true}

	mockRepo.EXPECT().
		UpdateConsultant("1", gomock.Any()).
		DoAndReturn(func(_ string, update func(*domain.Consultant)) bool {
			update(consultant)
			return true
		})

	service := NewService(mockRepo, nil)

	assert.True(t, service.ToggleConsultantStatus("1"))
	assert.False(t, consultant.Active)
}
