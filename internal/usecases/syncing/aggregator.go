package syncing

import (
	"github.com/sirupsen/logrus"

	gadomain "github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/domain"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
	"github.com/borncamp/marketing-dashboard-sync/pkg/utils"
)

// CampaignAggregator deduplica linhas de relatório por campanha, preservando
// a ordem de chegada tanto das campanhas quanto dos pontos de métrica.
// Pontos duplicados de (data, nome) entre as duas passadas NÃO são
// deduplicados; as duas janelas podem se sobrepor e ambos os pontos são
// mantidos.
type CampaignAggregator struct {
	metricNames []string
	order       []string
	records     map[string]*domain.CampaignRecord
}

func NewCampaignAggregator(metricNames []string) *CampaignAggregator {
	return &CampaignAggregator{
		metricNames: metricNames,
		records:     make(map[string]*domain.CampaignRecord),
	}
}

// Ingest incorpora uma passada de linhas do relatório de campanhas.
func (a *CampaignAggregator) Ingest(rows []gadomain.CampaignStatRow) {
	for _, row := range rows {
		date, err := utils.ParseDate(row.Segments.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": row.Campaign.ID,
				"date":        row.Segments.Date,
			}).Warn("Linha de campanha com data inválida, ignorando")
			continue
		}

		record, ok := a.records[row.Campaign.ID]
		if !ok {
			record = &domain.CampaignRecord{
				ID:       row.Campaign.ID,
				Name:     row.Campaign.Name,
				Status:   domain.MapCampaignStatus(row.Campaign.Status),
				Platform: domain.PlatformGoogleAds,
			}
			a.records[row.Campaign.ID] = record
			a.order = append(a.order, row.Campaign.ID)
		}

		for _, name := range a.metricNames {
			if point := domain.NormalizeMetric(date, name, row.Metrics.Get(name)); point != nil {
				record.Metrics = append(record.Metrics, *point)
			}
		}
	}
}

// Records devolve os registros na ordem de primeira aparição.
func (a *CampaignAggregator) Records() []*domain.CampaignRecord {
	records := make([]*domain.CampaignRecord, 0, len(a.order))
	for _, id := range a.order {
		records = append(records, a.records[id])
	}
	return records
}

// ProductAggregator deduplica linhas de relatório por (campanha, produto).
// Linhas reprovadas no filtro de elegibilidade são descartadas antes da
// criação do descritor: um produto inelegível não gera registro nenhum,
// mesmo tendo linhas de performance.
type ProductAggregator struct {
	metricNames []string
	allow       domain.AllowSet
	order       []domain.ProductRef
	records     map[domain.ProductRef]*domain.ProductRecord
}

func NewProductAggregator(metricNames []string, allow domain.AllowSet) *ProductAggregator {
	return &ProductAggregator{
		metricNames: metricNames,
		allow:       allow,
		records:     make(map[domain.ProductRef]*domain.ProductRecord),
	}
}

// Ingest incorpora uma passada de linhas do relatório de produtos.
func (a *ProductAggregator) Ingest(rows []gadomain.ProductStatRow) {
	for _, row := range rows {
		if !a.allow.Admit(row.Campaign.ID, row.Segments.ProductItemID) {
			continue
		}

		date, err := utils.ParseDate(row.Segments.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": row.Campaign.ID,
				"product_id":  row.Segments.ProductItemID,
				"date":        row.Segments.Date,
			}).Warn("Linha de produto com data inválida, ignorando")
			continue
		}

		key := domain.ProductRef{
			CampaignID: row.Campaign.ID,
			ProductID:  row.Segments.ProductItemID,
		}

		record, ok := a.records[key]
		if !ok {
			record = &domain.ProductRecord{
				ProductID:    row.Segments.ProductItemID,
				ProductTitle: row.Segments.ProductTitle,
				CampaignID:   row.Campaign.ID,
				CampaignName: row.Campaign.Name,
			}
			if entry, known := a.allow[key]; known {
				record.AdGroupID = entry.AdGroupID
			}
			a.records[key] = record
			a.order = append(a.order, key)
		}

		for _, name := range a.metricNames {
			if point := domain.NormalizeMetric(date, name, row.Metrics.Get(name)); point != nil {
				record.Metrics = append(record.Metrics, *point)
			}
		}
	}
}

// Records devolve os registros na ordem de primeira aparição.
func (a *ProductAggregator) Records() []*domain.ProductRecord {
	records := make([]*domain.ProductRecord, 0, len(a.order))
	for _, key := range a.order {
		records = append(records, a.records[key])
	}
	return records
}
