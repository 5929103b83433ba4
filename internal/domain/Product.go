package domain

// ProductRef identifica um produto dentro de uma campanha. É uma chave
// estrutural comparável por valor, para não depender de concatenação de
// strings com separador.
type ProductRef struct {
	CampaignID string
	ProductID  string
}

// ProductRecord é a série temporal de métricas de um produto dentro de uma
// campanha. AdGroupID só é preenchido quando o allow-set de elegibilidade
// conhece a chave.
type ProductRecord struct {
	ProductID    string        `json:"product_id"`
	ProductTitle string        `json:"product_title"`
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name"`
	AdGroupID    string        `json:"ad_group_id,omitempty"`
	Metrics      []MetricPoint `json:"metrics"`
}
