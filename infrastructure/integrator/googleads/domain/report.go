package domain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CampaignRef são os campos de campanha presentes em toda linha de relatório.
type CampaignRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AdGroupRef struct {
	ID string `json:"id"`
}

// Segments são os segmentos de linha usados pelos relatórios desta aplicação.
type Segments struct {
	Date          string `json:"date"`
	ProductItemID string `json:"productItemId"`
	ProductTitle  string `json:"productTitle"`
}

// CampaignStatRow é uma linha do relatório de performance de campanha.
type CampaignStatRow struct {
	Campaign CampaignRef `json:"campaign"`
	Segments Segments    `json:"segments"`
	Metrics  MetricSet   `json:"metrics"`
}

// ProductStatRow é uma linha do relatório de performance de produto
// (shopping_performance_view).
type ProductStatRow struct {
	Campaign CampaignRef `json:"campaign"`
	Segments Segments    `json:"segments"`
	Metrics  MetricSet   `json:"metrics"`
}

// ListingGroupRow é uma linha da consulta de critérios de listing group.
type ListingGroupRow struct {
	Campaign  CampaignRef           `json:"campaign"`
	AdGroup   AdGroupRef            `json:"adGroup"`
	Criterion ListingGroupCriterion `json:"adGroupCriterion"`
}

type ListingGroupCriterion struct {
	Status       string       `json:"status"`
	ListingGroup ListingGroup `json:"listingGroup"`
}

type ListingGroup struct {
	Type      string                `json:"type"`
	CaseValue ListingGroupCaseValue `json:"caseValue"`
}

type ListingGroupCaseValue struct {
	ProductItemID ProductItemIDValue `json:"productItemId"`
}

type ProductItemIDValue struct {
	Value string `json:"value"`
}

// ProductItemID retorna o id de item de produto do critério, vazio quando o
// nó não carrega um case value de produto.
func (r ListingGroupRow) ProductItemID() string {
	return r.Criterion.ListingGroup.CaseValue.ProductItemID.Value
}

// MetricSet guarda os campos de métrica de uma linha na forma bruta, pelo
// nome em snake_case usado na configuração (cost_micros, clicks, ...). Um
// valor nil significa que a API devolveu null para o campo; um campo que a
// API omitiu simplesmente não aparece no mapa.
type MetricSet map[string]*string

// Get devolve o literal bruto da métrica, ou nil quando ausente ou nula.
func (m MetricSet) Get(name string) *string {
	return m[name]
}

// UnmarshalJSON normaliza as chaves camelCase do JSON da API (costMicros)
// para snake_case e preserva os valores como literais: números ficam com a
// representação textual do JSON, strings perdem apenas as aspas.
func (m *MetricSet) UnmarshalJSON(data []byte) error {
	raw := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(MetricSet, len(raw))
	for key, value := range raw {
		name := snakeCase(key)

		literal := strings.TrimSpace(string(value))
		if literal == "null" {
			out[name] = nil
			continue
		}

		if strings.HasPrefix(literal, `"`) {
			var unquoted string
			if err := json.Unmarshal(value, &unquoted); err != nil {
				return err
			}
			literal = unquoted
		}

		out[name] = &literal
	}

	*m = out
	return nil
}

func snakeCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
