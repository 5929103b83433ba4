package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/internal/scheduler"
	"github.com/borncamp/marketing-dashboard-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAdsSync = "ads-sync"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar
// manualmente
type CronJobServices struct {
	SyncJobService *scheduler.SyncJobService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAdsSync, CronJobTypeAll:
			if services.SyncJobService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			services.SyncJobService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ads-sync, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o disparo manual de sincronização")
		}
	}
}

// GetSyncStatus retorna o status do agendador e o resumo da última execução
func GetSyncStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.SyncJobService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(services.SyncJobService.GetStatus()); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o status de sincronização")
		}
	}
}
