package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
	"github.com/victin77/dashboard-love/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// nomes dos campos nos erros seguem a tag json
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar validação notblank")
	}

	return v
}

// decodeAndValidate lê o corpo JSON em dst e aplica as regras de validação.
// Em caso de erro a resposta já foi escrita e o retorno é false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		details := make(map[string]string)

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				details[fieldErr.Field()] = fieldErr.Tag()
			}
		}

		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", details)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// scopedConsultantID decide de qual consultor são os dados pedidos.
// Consultores só veem os próprios dados; o admin escolhe pela query (vazio ou "all" = todos).
func scopedConsultantID(r *http.Request) string {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if ok && !claims.Session().IsAdmin() {
		return claims.ConsultantID
	}

	consultantID := r.URL.Query().Get("consultantId")
	if consultantID == "all" {
		return ""
	}
	return consultantID
}
