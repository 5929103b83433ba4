package adsclient

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	gadomain "github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/domain"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

// SearchCampaignStats busca as linhas de performance por campanha e dia para
// a janela informada.
func (c *AdsClient) SearchCampaignStats(window string, status domain.CampaignStatus, metrics []string) ([]gadomain.CampaignStatRow, error) {
	query := fmt.Sprintf(
		"SELECT campaign.id, campaign.name, campaign.status, segments.date, %s "+
			"FROM campaign "+
			"WHERE campaign.status = '%s' AND %s",
		metricFields(metrics),
		status,
		windowClause(window),
	)

	raw, err := c.searchStream(query)
	if err != nil {
		return nil, err
	}

	rows := make([]gadomain.CampaignStatRow, 0, len(raw))
	for _, message := range raw {
		var row gadomain.CampaignStatRow
		if err := json.Unmarshal(message, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha do relatório de campanhas")
			return nil, err
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"window": window,
		"rows":   len(rows),
	}).Debug("Relatório de campanhas obtido do Google Ads")

	return rows, nil
}

// metricFields monta a lista de seleção GAQL para os nomes de métrica
// configurados, na ordem configurada.
func metricFields(metrics []string) string {
	fields := make([]string, 0, len(metrics))
	for _, name := range metrics {
		fields = append(fields, "metrics."+name)
	}
	return strings.Join(fields, ", ")
}
