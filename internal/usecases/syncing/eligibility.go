package syncing

import (
	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

// buildAllowSet monta o conjunto de produtos elegíveis a partir dos critérios
// de listing group habilitados. Quando a própria consulta falha, o conjunto
// fica vazio e o filtro degrada para fail-open (ver domain.AllowSet.Admit);
// a falha é registrada, não propagada.
func (s *Service) buildAllowSet(logger *logrus.Entry) domain.AllowSet {
	allow := domain.AllowSet{}

	rows, err := s.adsClient.SearchListingGroups()
	if err != nil {
		logger.WithError(err).Warn("Consulta de elegibilidade falhou, admitindo todos os produtos (fail-open)")
		return allow
	}

	blank := 0
	for _, row := range rows {
		productID := row.ProductItemID()
		if productID == "" {
			blank++
			continue
		}

		allow[domain.ProductRef{
			CampaignID: row.Campaign.ID,
			ProductID:  productID,
		}] = domain.EligibilityEntry{
			Enabled:   true,
			AdGroupID: row.AdGroup.ID,
		}
	}

	logger.WithFields(logrus.Fields{
		"eligible": len(allow),
		"blank":    blank,
	}).Info("Conjunto de elegibilidade de produtos construído")

	return allow
}
