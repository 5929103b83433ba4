package syncing

import (
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

// Syncer executa um ciclo completo de sincronização: configuração remota,
// ramo de campanhas e ramo de produtos, nesta ordem.
type Syncer interface {
	Run() (*domain.SyncSummary, error)
}
