package dashclient

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

// FetchScriptConfig busca a configuração de execução no backend do dashboard.
// Em 200 com corpo JSON válido, o corpo vira a configuração da execução.
// Qualquer outro status, erro de transporte ou falha de parse cai no default
// embutido completo: esta chamada nunca derruba a sincronização.
func (c *DashboardClient) FetchScriptConfig() *domain.ScriptConfig {
	url := c.Cfg.Dashboard.BaseURL + "/api/script-config"

	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar configuração remota, usando default embutido")
		return domain.DefaultScriptConfig()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Warn("Configuração remota indisponível, usando default embutido")
		return domain.DefaultScriptConfig()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler configuração remota, usando default embutido")
		return domain.DefaultScriptConfig()
	}

	scriptCfg := &domain.ScriptConfig{}
	if err := json.Unmarshal(body, scriptCfg); err != nil {
		logrus.WithError(err).Warn("Erro ao decodificar configuração remota, usando default embutido")
		return domain.DefaultScriptConfig()
	}

	logrus.WithFields(logrus.Fields{
		"days_of_history":         scriptCfg.DaysOfHistory,
		"product_days_of_history": scriptCfg.ProductDaysOfHistory,
		"include_today":           scriptCfg.IncludeToday,
	}).Info("Configuração remota carregada do dashboard")

	return scriptCfg
}
