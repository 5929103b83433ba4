package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricSetUnmarshalJSON(t *testing.T) {
	payload := []byte(`{
		"costMicros": "1000000",
		"clicks": "5",
		"ctr": 0.05,
		"conversionsValue": null
	}`)

	var metrics MetricSet
	err := json.Unmarshal(payload, &metrics)
	assert.NoError(t, err)

	// Chaves camelCase da API viram os nomes snake_case da configuração.
	assert.NotNil(t, metrics.Get("cost_micros"))
	assert.Equal(t, "1000000", *metrics.Get("cost_micros"))

	assert.NotNil(t, metrics.Get("clicks"))
	assert.Equal(t, "5", *metrics.Get("clicks"))

	// Números sem aspas preservam o literal do JSON.
	assert.NotNil(t, metrics.Get("ctr"))
	assert.Equal(t, "0.05", *metrics.Get("ctr"))

	// Campo nulo fica presente no mapa, mas com valor nil.
	value, present := metrics["conversions_value"]
	assert.True(t, present)
	assert.Nil(t, value)

	// Campo omitido pela API não aparece.
	assert.Nil(t, metrics.Get("impressions"))
}

func TestListingGroupRowProductItemID(t *testing.T) {
	payload := []byte(`{
		"campaign": {"id": "C1"},
		"adGroup": {"id": "AG1"},
		"adGroupCriterion": {
			"status": "ENABLED",
			"listingGroup": {
				"type": "UNIT",
				"caseValue": {"productItemId": {"value": "P1"}}
			}
		}
	}`)

	var row ListingGroupRow
	err := json.Unmarshal(payload, &row)
	assert.NoError(t, err)
	assert.Equal(t, "P1", row.ProductItemID())
	assert.Equal(t, "C1", row.Campaign.ID)
	assert.Equal(t, "AG1", row.AdGroup.ID)

	// Nó de subdivisão sem case value de produto devolve id vazio.
	var subdivision ListingGroupRow
	err = json.Unmarshal([]byte(`{"adGroupCriterion":{"listingGroup":{"type":"SUBDIVISION"}}}`), &subdivision)
	assert.NoError(t, err)
	assert.Equal(t, "", subdivision.ProductItemID())
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "cost_micros", snakeCase("costMicros"))
	assert.Equal(t, "conversions_value", snakeCase("conversionsValue"))
	assert.Equal(t, "clicks", snakeCase("clicks"))
	assert.Equal(t, "ctr", snakeCase("ctr"))
}
