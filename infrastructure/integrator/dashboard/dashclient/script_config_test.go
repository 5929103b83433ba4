package dashclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borncamp/marketing-dashboard-sync/internal/config"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

func testClient(srv *httptest.Server, apiKey string) *DashboardClient {
	return &DashboardClient{
		Cfg: &config.Config{
			Dashboard: config.Dashboard{
				BaseURL: srv.URL,
				APIKey:  apiKey,
			},
		},
		HTTPClient: srv.Client(),
	}
}

func TestFetchScriptConfig(t *testing.T) {
	t.Run("resposta 200 válida é usada na íntegra", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/script-config", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"days_of_history": 14,
				"product_days_of_history": 14,
				"campaign_status_filter": "PAUSED",
				"require_impressions": false,
				"metric_names": ["clicks"],
				"include_today": false,
				"push_campaigns_path": "/custom/push",
				"push_products_path": "/custom/push-products"
			}`))
		}))
		defer srv.Close()

		got := testClient(srv, "").FetchScriptConfig()

		assert.Equal(t, 14, got.DaysOfHistory)
		assert.Equal(t, 14, got.ProductDaysOfHistory)
		assert.Equal(t, domain.CampaignStatusPaused, got.CampaignStatusFilter)
		assert.False(t, got.RequireImpressions)
		assert.Equal(t, []string{"clicks"}, got.MetricNames)
		assert.False(t, got.IncludeToday)
		assert.Equal(t, "/custom/push", got.PushCampaignsPath)
		assert.Equal(t, "/custom/push-products", got.PushProductsPath)
	})

	t.Run("status não-200 cai no default completo", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		got := testClient(srv, "").FetchScriptConfig()

		assert.Equal(t, domain.DefaultScriptConfig(), got)
	})

	t.Run("corpo não-JSON cai no default completo", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>manutenção</html>"))
		}))
		defer srv.Close()

		got := testClient(srv, "").FetchScriptConfig()

		assert.Equal(t, domain.DefaultScriptConfig(), got)
	})

	t.Run("erro de transporte cai no default completo", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		got := testClient(srv, "").FetchScriptConfig()

		assert.Equal(t, domain.DefaultScriptConfig(), got)
	})
}
