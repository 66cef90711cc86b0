package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/internal/usecases/consultant"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

func ListConsultants(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, registry.ListConsultants())
	}
}

func GetConsultant(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found, err := registry.GetConsultant(consultantIDParam(r))
		if err != nil {
			writeConsultantError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

// CreateConsultant cadastra um consultor; nome e senha não podem ser vazios
func CreateConsultant(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateConsultantRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		writeJSON(w, http.StatusCreated, registry.AddConsultant(req.Name, req.Password))
	}
}

func DeleteConsultant(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !registry.RemoveConsultant(consultantIDParam(r)) {
			apiErrors.WriteError(w, apiErrors.ErrConsultantNotFound, "Consultor não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

func UpdateConsultantPassword(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdatePasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if !registry.UpdateConsultantPassword(consultantIDParam(r), req.Password) {
			apiErrors.WriteError(w, apiErrors.ErrConsultantNotFound, "Consultor não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// ToggleConsultantStatus inverte o status e devolve o consultor atualizado
func ToggleConsultantStatus(registry consultant.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := consultantIDParam(r)

		if !registry.ToggleConsultantStatus(id) {
			apiErrors.WriteError(w, apiErrors.ErrConsultantNotFound, "Consultor não encontrado", nil)
			return
		}

		updated, err := registry.GetConsultant(id)
		if err != nil {
			writeConsultantError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func consultantIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func writeConsultantError(w http.ResponseWriter, err error) {
	var consultantErr *consultant.ConsultantError
	if errors.As(err, &consultantErr) {
		apiErrors.WriteError(w, consultantErr.Code, consultantErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar consultor", nil)
}
