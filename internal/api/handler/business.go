package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/business"
	"github.com/vfg2006/ad-balance-monitor/pkg/apiErrors"
)

// AssociateBusiness associa as contas do business informado e devolve o relatório
func AssociateBusiness(service business.AssociationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do business não informado", nil)
			return
		}

		report, err := service.AssociateByID(r.Context(), businessID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("Erro ao associar contas do business")

			switch {
			case errors.Is(err, business.ErrBusinessNotFound):
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Business não encontrado", nil)
			case errors.Is(err, domain.ErrMissingCredential):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Perfil de credencial sem token", nil)
			case errors.Is(err, business.ErrAssociationFailed):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar a plataforma", report)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao associar contas", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
