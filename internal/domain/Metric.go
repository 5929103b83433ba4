package domain

import (
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MetricUnit string

const (
	MetricUnitUSD     MetricUnit = "USD"
	MetricUnitPercent MetricUnit = "%"
	MetricUnitCount   MetricUnit = "count"
)

// MetricPoint é um ponto normalizado da série temporal de uma métrica.
// Só existe quando o campo bruto correspondente veio presente e não nulo na
// resposta do relatório; nunca é sintetizado com valor zero.
type MetricPoint struct {
	Date  time.Time  `json:"-"`
	Name  string     `json:"name"`
	Value float64    `json:"value"`
	Unit  MetricUnit `json:"unit"`
}

// MarshalJSON serializa a data no formato aceito pelo endpoint de sync do
// dashboard (YYYY-MM-DD).
func (p MetricPoint) MarshalJSON() ([]byte, error) {
	type alias MetricPoint
	return json.Marshal(struct {
		Date string `json:"date"`
		alias
	}{
		Date:  p.Date.Format(time.DateOnly),
		alias: alias(p),
	})
}

// metricRule é uma entrada da tabela ordenada de normalização. A primeira
// regra cujo match aceitar o nome bruto decide nome, valor e unidade.
type metricRule struct {
	match func(rawName string) bool
	apply func(rawName string, rawValue string) (string, float64, MetricUnit)
}

// A ordem das regras importa: as regras exatas (cost_micros, ctr,
// conversions_value) precisam vir antes das regras por substring ("micros",
// "rate"/"ctr") para não serem sombreadas por elas.
var metricRules = []metricRule{
	{
		match: func(name string) bool { return name == "cost_micros" },
		apply: func(_ string, raw string) (string, float64, MetricUnit) {
			return "spend", parseNumber(raw) / 1_000_000, MetricUnitUSD
		},
	},
	{
		match: func(name string) bool { return name == "ctr" },
		apply: func(_ string, raw string) (string, float64, MetricUnit) {
			return "ctr", parseNumber(raw) * 100, MetricUnitPercent
		},
	},
	{
		match: func(name string) bool { return name == "conversions_value" },
		apply: func(_ string, raw string) (string, float64, MetricUnit) {
			return "conversion_value", parseNumber(raw), MetricUnitUSD
		},
	},
	{
		match: func(name string) bool { return strings.Contains(name, "micros") },
		apply: func(name string, raw string) (string, float64, MetricUnit) {
			return strings.ReplaceAll(name, "_micros", ""), parseNumber(raw) / 1_000_000, MetricUnitUSD
		},
	},
	{
		match: func(name string) bool {
			return strings.Contains(name, "rate") || strings.Contains(name, "ctr")
		},
		apply: func(name string, raw string) (string, float64, MetricUnit) {
			return name, parseNumber(raw) * 100, MetricUnitPercent
		},
	},
	{
		match: func(string) bool { return true },
		apply: func(name string, raw string) (string, float64, MetricUnit) {
			return name, parseCount(raw), MetricUnitCount
		},
	},
}

// NormalizeMetric converte um campo bruto do relatório em um MetricPoint.
// Retorna nil quando o valor bruto veio ausente ou nulo.
func NormalizeMetric(date time.Time, rawName string, rawValue *string) *MetricPoint {
	if rawValue == nil {
		return nil
	}

	for _, rule := range metricRules {
		if !rule.match(rawName) {
			continue
		}

		name, value, unit := rule.apply(rawName, *rawValue)
		return &MetricPoint{
			Date:  date,
			Name:  name,
			Value: value,
			Unit:  unit,
		}
	}

	return nil
}

func parseNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// parseCount tenta ponto flutuante, depois inteiro, e por fim cai em zero.
func parseCount(raw string) float64 {
	raw = strings.TrimSpace(raw)

	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return value
	}

	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return float64(value)
	}

	return 0
}
