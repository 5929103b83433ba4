package adsclient

import (
	"fmt"

	"github.com/sirupsen/logrus"

	gadomain "github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/domain"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

// SearchProductStats busca as linhas de performance por produto e dia na
// shopping_performance_view para a janela informada.
func (c *AdsClient) SearchProductStats(window string, status domain.CampaignStatus, requireImpressions bool, metrics []string) ([]gadomain.ProductStatRow, error) {
	impressionsFilter := ""
	if requireImpressions {
		impressionsFilter = " AND metrics.impressions > 0"
	}

	query := fmt.Sprintf(
		"SELECT segments.product_item_id, segments.product_title, campaign.id, campaign.name, campaign.status, segments.date, %s "+
			"FROM shopping_performance_view "+
			"WHERE campaign.status = '%s' AND %s%s "+
			"ORDER BY segments.product_item_id, segments.date ASC",
		metricFields(metrics),
		status,
		windowClause(window),
		impressionsFilter,
	)

	raw, err := c.searchStream(query)
	if err != nil {
		return nil, err
	}

	rows := make([]gadomain.ProductStatRow, 0, len(raw))
	for _, message := range raw {
		var row gadomain.ProductStatRow
		if err := json.Unmarshal(message, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha do relatório de produtos")
			return nil, err
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"window": window,
		"rows":   len(rows),
	}).Debug("Relatório de produtos obtido do Google Ads")

	return rows, nil
}
