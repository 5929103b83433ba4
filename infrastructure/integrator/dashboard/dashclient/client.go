package dashclient

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/borncamp/marketing-dashboard-sync/internal/config"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SourceTag identifica este agente nos envelopes de push.
const SourceTag = "google_ads_script"

type Client interface {
	// FetchScriptConfig nunca falha: qualquer problema na busca resulta na
	// configuração default completa.
	FetchScriptConfig() *domain.ScriptConfig
	PushCampaigns(cfg *domain.ScriptConfig, records []*domain.CampaignRecord) (*PushResult, error)
	PushProducts(cfg *domain.ScriptConfig, records []*domain.ProductRecord) (*PushResult, error)
}

// PushResult é a resposta dos endpoints de sync do dashboard.
type PushResult struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	CampaignsProcessed int    `json:"campaigns_processed"`
	ProductsProcessed  int    `json:"products_processed"`
}

// Processed devolve a contagem processada do ramo correspondente.
func (r *PushResult) Processed() int {
	if r.CampaignsProcessed > 0 {
		return r.CampaignsProcessed
	}
	return r.ProductsProcessed
}

type DashboardClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &DashboardClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
