package syncing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/dashboard/dashclient"
	"github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/adsclient"
	"github.com/borncamp/marketing-dashboard-sync/internal/config"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
	"github.com/borncamp/marketing-dashboard-sync/pkg/utils"
)

// Service implementa o ciclo de sincronização. Uma execução é totalmente
// sequencial: configuração remota, ramo de campanhas (histórico, hoje
// opcional, push) e ramo de produtos (elegibilidade, histórico, hoje
// opcional, push). Não há retry nem backoff; cada falha ou degrada para o
// default documentado ou encerra apenas o ramo em que ocorreu.
type Service struct {
	cfg       *config.Config
	adsClient adsclient.Client
	dashboard dashclient.Client
}

func NewService(cfg *config.Config, adsClient adsclient.Client, dashboard dashclient.Client) Syncer {
	return &Service{
		cfg:       cfg,
		adsClient: adsClient,
		dashboard: dashboard,
	}
}

// Run executa um ciclo completo. Os dois ramos são independentes: a falha de
// um é registrada no resumo e no erro retornado, mas não impede o outro.
func (s *Service) Run() (*domain.SyncSummary, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "desconhecido"
	}

	logger := logrus.WithField("run_id", runID)
	started := time.Now()

	logger.Info("Iniciando ciclo de sincronização com o Google Ads")

	scriptCfg := s.dashboard.FetchScriptConfig()

	summary := &domain.SyncSummary{
		RunID:     runID,
		StartedAt: started,
	}

	campaignErr := s.syncCampaigns(logger, scriptCfg, &summary.Campaigns)
	if campaignErr != nil {
		logger.WithError(campaignErr).Error("Ramo de campanhas falhou")
	}

	productErr := s.syncProducts(logger, scriptCfg, &summary.Products)
	if productErr != nil {
		logger.WithError(productErr).Error("Ramo de produtos falhou")
	}

	summary.FinishedAt = time.Now()
	summary.Duration = summary.FinishedAt.Sub(started).String()

	logger.WithFields(logrus.Fields{
		"duration":            summary.Duration,
		"campaigns_synced":    summary.Campaigns.Synced,
		"campaigns_processed": summary.Campaigns.Processed,
		"products_synced":     summary.Products.Synced,
		"products_processed":  summary.Products.Processed,
	}).Info("Ciclo de sincronização encerrado")

	logger.Debugf("Resumo da execução: %s", utils.PrettyJson(summary))

	if campaignErr != nil {
		return summary, campaignErr
	}
	return summary, productErr
}

// syncCampaigns executa o ramo de campanhas. A consulta histórica é a fonte
// primária e não tem fallback: a falha dela encerra o ramo. A passada do dia
// corrente é opcional e a falha dela mantém o histórico já acumulado.
func (s *Service) syncCampaigns(logger *logrus.Entry, scriptCfg *domain.ScriptConfig, outcome *domain.BranchOutcome) error {
	window := adsclient.ResolveWindow(scriptCfg.DaysOfHistory)

	rows, err := s.adsClient.SearchCampaignStats(window, scriptCfg.CampaignStatusFilter, scriptCfg.MetricNames)
	if err != nil {
		outcome.Error = err.Error()
		return errors.Wrap(err, "campanhas: consulta histórica falhou")
	}

	aggregator := NewCampaignAggregator(scriptCfg.MetricNames)
	aggregator.Ingest(rows)

	if scriptCfg.IncludeToday {
		todayRows, err := s.adsClient.SearchCampaignStats(adsclient.WindowToday, scriptCfg.CampaignStatusFilter, scriptCfg.MetricNames)
		switch {
		case err != nil:
			logger.WithError(err).Warn("Passada de hoje falhou para campanhas, seguindo só com o histórico")
		case len(todayRows) == 0:
			logger.Debug("Nenhuma linha de hoje para campanhas")
		default:
			aggregator.Ingest(todayRows)
		}
	}

	records := aggregator.Records()
	outcome.Records = len(records)

	logger.WithFields(logrus.Fields{
		"window":    window,
		"campaigns": len(records),
	}).Info("Campanhas agregadas, enviando para o dashboard")

	result, err := s.dashboard.PushCampaigns(scriptCfg, records)
	if err != nil {
		outcome.Error = err.Error()
		return errors.Wrap(err, "campanhas: push falhou")
	}

	outcome.Synced = true
	outcome.Processed = result.Processed()
	return nil
}

// syncProducts executa o ramo de produtos: allow-set de elegibilidade
// (fail-open), histórico, hoje opcional, push.
func (s *Service) syncProducts(logger *logrus.Entry, scriptCfg *domain.ScriptConfig, outcome *domain.BranchOutcome) error {
	allow := s.buildAllowSet(logger)

	window := adsclient.ResolveWindow(scriptCfg.ProductDaysOfHistory)

	rows, err := s.adsClient.SearchProductStats(window, scriptCfg.CampaignStatusFilter, scriptCfg.RequireImpressions, scriptCfg.MetricNames)
	if err != nil {
		outcome.Error = err.Error()
		return errors.Wrap(err, "produtos: consulta histórica falhou")
	}

	aggregator := NewProductAggregator(scriptCfg.MetricNames, allow)
	aggregator.Ingest(rows)

	if scriptCfg.IncludeToday {
		todayRows, err := s.adsClient.SearchProductStats(adsclient.WindowToday, scriptCfg.CampaignStatusFilter, scriptCfg.RequireImpressions, scriptCfg.MetricNames)
		switch {
		case err != nil:
			logger.WithError(err).Warn("Passada de hoje falhou para produtos, seguindo só com o histórico")
		case len(todayRows) == 0:
			logger.Debug("Nenhuma linha de hoje para produtos")
		default:
			aggregator.Ingest(todayRows)
		}
	}

	records := aggregator.Records()
	outcome.Records = len(records)

	logger.WithFields(logrus.Fields{
		"window":   window,
		"products": len(records),
	}).Info("Produtos agregados, enviando para o dashboard")

	result, err := s.dashboard.PushProducts(scriptCfg, records)
	if err != nil {
		outcome.Error = err.Error()
		return errors.Wrap(err, "produtos: push falhou")
	}

	outcome.Synced = true
	outcome.Processed = result.Processed()
	return nil
}
