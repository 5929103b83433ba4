package domain

// PlatformGoogleAds identifica a origem dos dados nos registros enviados ao
// dashboard.
const PlatformGoogleAds = "google_ads"

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
	CampaignStatusUnknown CampaignStatus = "UNKNOWN"
)

// MapCampaignStatus converte o status bruto reportado pela API do Google Ads
// para o enum conhecido pelo dashboard.
func MapCampaignStatus(raw string) CampaignStatus {
	switch CampaignStatus(raw) {
	case CampaignStatusEnabled, CampaignStatusPaused, CampaignStatusRemoved:
		return CampaignStatus(raw)
	default:
		return CampaignStatusUnknown
	}
}

// CampaignRecord é a série temporal de métricas de uma campanha dentro de uma
// execução. A ordem de Metrics é a ordem de chegada das linhas do relatório,
// sem reordenação por data após o merge das duas janelas.
type CampaignRecord struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Status   CampaignStatus `json:"status"`
	Platform string         `json:"platform"`
	Metrics  []MetricPoint  `json:"metrics"`
}
