package adsclient

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow_CanonicalTokens(t *testing.T) {
	assert.Equal(t, "LAST_7_DAYS", ResolveWindow(7))
	assert.Equal(t, "LAST_14_DAYS", ResolveWindow(14))
	assert.Equal(t, "LAST_30_DAYS", ResolveWindow(30))
}

func TestResolveWindow_ExplicitRange(t *testing.T) {
	window := ResolveWindow(45)

	start, end, ok := strings.Cut(window, ",")
	assert.True(t, ok, "janela não canônica deve ser um intervalo start,end")
	assert.Len(t, start, 8)
	assert.Len(t, end, 8)

	startDate, err := time.Parse(explicitDateLayout, start)
	assert.NoError(t, err)
	endDate, err := time.Parse(explicitDateLayout, end)
	assert.NoError(t, err)

	// Intervalo inclusivo [hoje-45, hoje]: os extremos ficam exatamente 45
	// dias distantes.
	assert.Equal(t, 45*24*time.Hour, endDate.Sub(startDate))
}

// Tokens nomeados nunca são sintetizados para contagens não canônicas, nem
// intervalos explícitos para as canônicas.
func TestResolveWindow_Asymmetry(t *testing.T) {
	for _, days := range []int{1, 6, 8, 15, 29, 31, 90} {
		assert.Contains(t, ResolveWindow(days), ",", "dias=%d", days)
	}
	for _, days := range []int{7, 14, 30} {
		assert.NotContains(t, ResolveWindow(days), ",", "dias=%d", days)
	}
}

func TestWindowClause(t *testing.T) {
	assert.Equal(t, "segments.date DURING LAST_30_DAYS", windowClause("LAST_30_DAYS"))
	assert.Equal(t, "segments.date DURING TODAY", windowClause(WindowToday))
	assert.Equal(t,
		"segments.date BETWEEN '2024-01-01' AND '2024-02-15'",
		windowClause("20240101,20240215"),
	)
}
