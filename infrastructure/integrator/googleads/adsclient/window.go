package adsclient

import (
	"fmt"
	"strings"
	"time"
)

// WindowToday é a janela usada pela passada opcional do dia corrente.
const WindowToday = "TODAY"

const explicitDateLayout = "20060102"

// ResolveWindow converte uma quantidade de dias em uma especificação de
// janela de relatório. Os valores canônicos 7, 14 e 30 viram os tokens
// relativos nomeados da API; qualquer outro valor vira o intervalo explícito
// e inclusivo [hoje-dias, hoje] no formato YYYYMMDD,YYYYMMDD. A assimetria é
// proposital e precisa ser mantida: não sintetizamos tokens para contagens
// não canônicas nem intervalos explícitos para as canônicas.
func ResolveWindow(days int) string {
	switch days {
	case 7:
		return "LAST_7_DAYS"
	case 14:
		return "LAST_14_DAYS"
	case 30:
		return "LAST_30_DAYS"
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	return start.Format(explicitDateLayout) + "," + end.Format(explicitDateLayout)
}

// windowClause traduz a especificação de janela para a cláusula GAQL
// correspondente.
func windowClause(window string) string {
	if start, end, ok := strings.Cut(window, ","); ok {
		return fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", gaqlDate(start), gaqlDate(end))
	}

	return "segments.date DURING " + window
}

// gaqlDate reformata YYYYMMDD para o literal de data YYYY-MM-DD do GAQL.
func gaqlDate(yyyymmdd string) string {
	if len(yyyymmdd) != 8 {
		return yyyymmdd
	}

	return yyyymmdd[:4] + "-" + yyyymmdd[4:6] + "-" + yyyymmdd[6:]
}
