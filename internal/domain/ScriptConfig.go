package domain

// ScriptConfig é a configuração remota de uma execução de sincronização,
// obtida do backend do dashboard em /api/script-config. Deve ser sempre um
// valor completo: quando a busca falha, o default documentado entra no lugar
// inteiro, nunca campo a campo.
type ScriptConfig struct {
	DaysOfHistory        int            `json:"days_of_history"`
	ProductDaysOfHistory int            `json:"product_days_of_history"`
	CampaignStatusFilter CampaignStatus `json:"campaign_status_filter"`
	RequireImpressions   bool           `json:"require_impressions"`
	MetricNames          []string       `json:"metric_names"`
	IncludeToday         bool           `json:"include_today"`
	PushCampaignsPath    string         `json:"push_campaigns_path"`
	PushProductsPath     string         `json:"push_products_path"`
}

// DefaultScriptConfig retorna a configuração embutida usada quando o backend
// não responde com uma configuração válida.
func DefaultScriptConfig() *ScriptConfig {
	return &ScriptConfig{
		DaysOfHistory:        30,
		ProductDaysOfHistory: 7,
		CampaignStatusFilter: CampaignStatusEnabled,
		RequireImpressions:   true,
		MetricNames: []string{
			"cost_micros",
			"clicks",
			"impressions",
			"ctr",
			"conversions",
			"conversions_value",
		},
		IncludeToday:      true,
		PushCampaignsPath: "/sync/push",
		PushProductsPath:  "/sync/push-products",
	}
}
