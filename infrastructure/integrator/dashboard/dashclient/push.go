package dashclient

import (
	"bytes"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

// pushEnvelope é o corpo aceito pelos dois endpoints de sync do dashboard.
type pushEnvelope struct {
	Entities any    `json:"entities"`
	Source   string `json:"source"`
}

// PushCampaigns envia os registros de campanha para o endpoint configurado.
func (c *DashboardClient) PushCampaigns(cfg *domain.ScriptConfig, records []*domain.CampaignRecord) (*PushResult, error) {
	return c.push(cfg.PushCampaignsPath, records)
}

// PushProducts envia os registros de produto para o endpoint configurado.
func (c *DashboardClient) PushProducts(cfg *domain.ScriptConfig, records []*domain.ProductRecord) (*PushResult, error) {
	return c.push(cfg.PushProductsPath, records)
}

// push executa o protocolo de envio: POST do envelope e um contrato estrito
// de sucesso. Sucesso exige status 200 E success=true no corpo; qualquer
// outra combinação vira erro terminal do ramo, carregando o status e o corpo
// bruto para diagnóstico.
func (c *DashboardClient) push(path string, entities any) (*PushResult, error) {
	url := c.Cfg.Dashboard.BaseURL + path

	payload, err := json.Marshal(pushEnvelope{
		Entities: entities,
		Source:   SourceTag,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Cfg.Dashboard.APIKey != "" {
		req.Header.Set("X-API-Key", c.Cfg.Dashboard.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "dashboard: erro ao enviar para %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "dashboard: erro ao ler resposta de %s", path)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("dashboard: push para %s falhou: status %d: %s", path, resp.StatusCode, body)
	}

	result := &PushResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, errors.Errorf("dashboard: resposta inválida de %s: status %d: %s", path, resp.StatusCode, body)
	}

	if !result.Success {
		return nil, errors.Errorf("dashboard: push para %s recusado: status %d: %s", path, resp.StatusCode, body)
	}

	logrus.WithFields(logrus.Fields{
		"path":      path,
		"processed": result.Processed(),
	}).Info("Push aceito pelo dashboard")

	return result, nil
}
