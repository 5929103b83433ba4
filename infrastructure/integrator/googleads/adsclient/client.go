package adsclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gadomain "github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/domain"
	"github.com/borncamp/marketing-dashboard-sync/internal/config"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	SearchCampaignStats(window string, status domain.CampaignStatus, metrics []string) ([]gadomain.CampaignStatRow, error)
	SearchProductStats(window string, status domain.CampaignStatus, requireImpressions bool, metrics []string) ([]gadomain.ProductStatRow, error)
	SearchListingGroups() ([]gadomain.ListingGroupRow, error)
}

type AdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// streamChunk é um bloco da resposta do searchStream; a API devolve um array
// de blocos, cada um com um lote de resultados.
type streamChunk struct {
	Results []jsoniter.RawMessage `json:"results"`
}

// searchStream envia uma consulta GAQL e devolve as linhas brutas de todos os
// blocos da resposta, na ordem em que chegaram.
func (c *AdsClient) searchStream(query string) ([]jsoniter.RawMessage, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.CustomerID)

	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o Google Ads")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para o Google Ads")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var chunks []streamChunk
	if err := json.Unmarshal(body, &chunks); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do Google Ads")
		return nil, err
	}

	var rows []jsoniter.RawMessage
	for _, chunk := range chunks {
		rows = append(rows, chunk.Results...)
	}

	return rows, nil
}

// handleResponse lê o corpo e transforma status não-200 em erro preservando o
// corpo bruto para diagnóstico.
func (c *AdsClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("google ads: status %d: %s", resp.StatusCode, body)
	}

	return body, nil
}
