package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestNormalizeMetric(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rawName  string
		rawValue *string
		expected *MetricPoint
	}{
		{
			name:     "Valor nulo nunca gera ponto",
			rawName:  "clicks",
			rawValue: nil,
			expected: nil,
		},
		{
			name:     "cost_micros vira spend em USD dividido por um milhão",
			rawName:  "cost_micros",
			rawValue: strPtr("1000000"),
			expected: &MetricPoint{Date: date, Name: "spend", Value: 1.0, Unit: MetricUnitUSD},
		},
		{
			name:     "ctr é escalado por 100 como percentual",
			rawName:  "ctr",
			rawValue: strPtr("0.05"),
			expected: &MetricPoint{Date: date, Name: "ctr", Value: 5.0, Unit: MetricUnitPercent},
		},
		{
			name:     "ctr negativo também é escalado por 100",
			rawName:  "ctr",
			rawValue: strPtr("-0.5"),
			expected: &MetricPoint{Date: date, Name: "ctr", Value: -50.0, Unit: MetricUnitPercent},
		},
		{
			name:     "conversions_value vira conversion_value em USD sem escala",
			rawName:  "conversions_value",
			rawValue: strPtr("42.5"),
			expected: &MetricPoint{Date: date, Name: "conversion_value", Value: 42.5, Unit: MetricUnitUSD},
		},
		{
			name:     "métrica micros genérica perde o sufixo e divide por um milhão",
			rawName:  "average_cpc_micros",
			rawValue: strPtr("2500000"),
			expected: &MetricPoint{Date: date, Name: "average_cpc", Value: 2.5, Unit: MetricUnitUSD},
		},
		{
			name:     "métrica rate genérica é escalada por 100 como percentual",
			rawName:  "conversion_rate",
			rawValue: strPtr("0.1"),
			expected: &MetricPoint{Date: date, Name: "conversion_rate", Value: 10.0, Unit: MetricUnitPercent},
		},
		{
			name:     "métrica contendo ctr cai na regra de percentual mantendo o nome",
			rawName:  "search_ctr",
			rawValue: strPtr("0.02"),
			expected: &MetricPoint{Date: date, Name: "search_ctr", Value: 2.0, Unit: MetricUnitPercent},
		},
		{
			name:     "métrica desconhecida vira contagem com parse de ponto flutuante",
			rawName:  "clicks",
			rawValue: strPtr("5"),
			expected: &MetricPoint{Date: date, Name: "clicks", Value: 5, Unit: MetricUnitCount},
		},
		{
			name:     "valor não numérico cai em zero na regra de contagem",
			rawName:  "impressions",
			rawValue: strPtr("abc"),
			expected: &MetricPoint{Date: date, Name: "impressions", Value: 0, Unit: MetricUnitCount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point := NormalizeMetric(date, tt.rawName, tt.rawValue)

			if tt.expected == nil {
				assert.Nil(t, point)
				return
			}

			assert.NotNil(t, point)
			assert.Equal(t, tt.expected.Name, point.Name)
			assert.InDelta(t, tt.expected.Value, point.Value, 1e-9)
			assert.Equal(t, tt.expected.Unit, point.Unit)
			assert.Equal(t, tt.expected.Date, point.Date)
		})
	}
}

// A ordem da tabela de regras é comportamento observável: as regras exatas
// precisam vencer as regras por substring.
func TestNormalizeMetric_RuleOrdering(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	// cost_micros contém "micros" mas não pode cair na regra genérica que
	// só removeria o sufixo: o nome canônico é spend.
	point := NormalizeMetric(date, "cost_micros", strPtr("3000000"))
	assert.Equal(t, "spend", point.Name)
	assert.Equal(t, MetricUnitUSD, point.Unit)

	// ctr contém "ctr" mas a regra exata decide antes da regra por
	// substring; o resultado é o mesmo escalonamento, com nome ctr.
	point = NormalizeMetric(date, "ctr", strPtr("1"))
	assert.Equal(t, "ctr", point.Name)
	assert.Equal(t, 100.0, point.Value)

	// conversions_value não contém micros nem rate, mas documenta que a
	// regra exata renomeia para conversion_value.
	point = NormalizeMetric(date, "conversions_value", strPtr("10"))
	assert.Equal(t, "conversion_value", point.Name)
}

// Propriedade: todo nome contendo micros (fora o caso especial cost_micros)
// divide por um milhão e sai em USD.
func TestNormalizeMetric_MicrosProperty(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	names := []string{"average_cpc_micros", "average_cpm_micros", "cost_per_conversion_micros"}
	for _, name := range names {
		point := NormalizeMetric(date, name, strPtr("7000000"))
		assert.NotNil(t, point, name)
		assert.InDelta(t, 7.0, point.Value, 1e-9, name)
		assert.Equal(t, MetricUnitUSD, point.Unit, name)
	}
}

func TestMetricPointMarshalJSON(t *testing.T) {
	point := MetricPoint{
		Date:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Name:  "spend",
		Value: 1.5,
		Unit:  MetricUnitUSD,
	}

	data, err := json.Marshal(point)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-02","name":"spend","value":1.5,"unit":"USD"}`, string(data))
}
