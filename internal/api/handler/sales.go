package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/internal/usecases/insighting"
	"github.com/victin77/dashboard-love/internal/usecases/selling"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
	"github.com/victin77/dashboard-love/pkg/middleware"
)

const exportFileName = "vendas.csv"

// SaleResponse acrescenta à venda a contagem de parcelas por status
type SaleResponse struct {
	domain.Sale
	InstallmentProgress domain.InstallmentStats `json:"installmentProgress"`
}

type RefreshSalesResponse struct {
	Sales      int       `json:"sales"`
	LastUpdate time.Time `json:"lastUpdate"`
}

func toSaleResponse(sale domain.Sale) SaleResponse {
	return SaleResponse{
		Sale:                sale,
		InstallmentProgress: insighting.InstallmentProgress(sale),
	}
}

func salesFilterFromRequest(r *http.Request) domain.SalesFilter {
	query := r.URL.Query()

	filter := domain.SalesFilter{
		Search:  query.Get("search"),
		Product: query.Get("product"),
	}

	// filtro por consultor é só do admin; consultor fica restrito às próprias vendas
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && !claims.Session().IsAdmin() {
		filter.ScopeConsultantID = claims.ConsultantID
	} else {
		filter.ConsultantID = query.Get("consultantId")
	}

	return filter
}

func ListSales(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales := service.ListSales(salesFilterFromRequest(r))

		response := make([]SaleResponse, 0, len(sales))
		for _, sale := range sales {
			response = append(response, toSaleResponse(sale))
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// GetSale retorna uma venda. Consultores só enxergam as próprias vendas.
func GetSale(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.GetSale(id)
		if err != nil {
			if errors.Is(err, selling.ErrSaleNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao buscar venda")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar venda", nil)
			return
		}

		filter := salesFilterFromRequest(r)
		if filter.ScopeConsultantID != "" && sale.ConsultantID != filter.ScopeConsultantID {
			apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, toSaleResponse(*sale))
	}
}

// RefreshSales gera um novo conjunto de vendas para todos os consultores
func RefreshSales(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := service.RefreshSales(r.Context())
		if err != nil {
			logrus.WithError(err).Warn("Atualização de vendas não concluída")
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Atualização de vendas interrompida", nil)
			return
		}

		writeJSON(w, http.StatusOK, RefreshSalesResponse{
			Sales:      count,
			LastUpdate: service.LastUpdate(),
		})
	}
}

func ExportSales(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)

		if err := service.ExportSalesCSV(w, salesFilterFromRequest(r)); err != nil {
			logrus.WithError(err).Error("Erro ao exportar vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar vendas", nil)
			return
		}
	}
}
