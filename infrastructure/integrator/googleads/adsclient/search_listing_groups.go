package adsclient

import (
	"github.com/sirupsen/logrus"

	gadomain "github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/domain"
)

// Consulta de critérios de listing group que definem quais produtos podem
// veicular. Só interessam nós folha (tipo UNIT) com campanha, grupo de
// anúncios e critério habilitados; subdivisões não carregam produto.
const listingGroupsQuery = "SELECT campaign.id, ad_group.id, ad_group_criterion.status, " +
	"ad_group_criterion.listing_group.type, " +
	"ad_group_criterion.listing_group.case_value.product_item_id.value " +
	"FROM ad_group_criterion " +
	"WHERE campaign.status = 'ENABLED' " +
	"AND ad_group.status = 'ENABLED' " +
	"AND ad_group_criterion.status = 'ENABLED' " +
	"AND ad_group_criterion.listing_group.type = 'UNIT'"

// SearchListingGroups busca os critérios de listing group habilitados.
func (c *AdsClient) SearchListingGroups() ([]gadomain.ListingGroupRow, error) {
	raw, err := c.searchStream(listingGroupsQuery)
	if err != nil {
		return nil, err
	}

	rows := make([]gadomain.ListingGroupRow, 0, len(raw))
	for _, message := range raw {
		var row gadomain.ListingGroupRow
		if err := json.Unmarshal(message, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha de critérios de listing group")
			return nil, err
		}
		rows = append(rows, row)
	}

	logrus.WithField("rows", len(rows)).Debug("Critérios de listing group obtidos do Google Ads")

	return rows, nil
}
