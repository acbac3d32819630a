package application

import (
	"context"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/pkg/metrics"
)

// RiskAnalyticsApplicationService 风险分析服务门面，整合命令服务和查询服务
type RiskAnalyticsApplicationService struct {
	commandService *RiskAnalyticsCommandService
	queryService   *RiskAnalyticsQueryService
}

// NewRiskAnalyticsApplicationService 创建风险分析服务门面实例
func NewRiskAnalyticsApplicationService(
	generator *domain.PositionGenerator,
	engine *domain.ScenarioEngine,
	library *domain.ScenarioLibrary,
	historyRepo domain.HistoryRepository,
	publisher domain.EventPublisher,
	collector metrics.MetricsCollector,
	portfolios []string,
	histogramBins int,
) *RiskAnalyticsApplicationService {
	return &RiskAnalyticsApplicationService{
		commandService: NewRiskAnalyticsCommandService(generator, engine, library, publisher, collector, histogramBins),
		queryService:   NewRiskAnalyticsQueryService(generator, library, historyRepo, collector, portfolios),
	}
}

// RunScenario 执行情景压力测试
func (s *RiskAnalyticsApplicationService) RunScenario(ctx context.Context, cmd RunScenarioCommand) (*ScenarioRunResult, error) {
	return s.commandService.RunScenario(ctx, cmd)
}

// ListPortfolios 列出可选组合
func (s *RiskAnalyticsApplicationService) ListPortfolios(ctx context.Context) []string {
	return s.queryService.ListPortfolios(ctx)
}

// ListScenarios 列出情景库
func (s *RiskAnalyticsApplicationService) ListScenarios(ctx context.Context) []ScenarioDTO {
	return s.queryService.ListScenarios(ctx)
}

// GetPositions 获取组合持仓簿
func (s *RiskAnalyticsApplicationService) GetPositions(ctx context.Context, portfolioID string) ([]PositionDTO, error) {
	return s.queryService.GetPositions(ctx, portfolioID)
}

// GetRiskHistory 获取组合历史风险序列
func (s *RiskAnalyticsApplicationService) GetRiskHistory(ctx context.Context, portfolioID string) ([]RiskPointDTO, error) {
	return s.queryService.GetRiskHistory(ctx, portfolioID)
}

// GetRiskSummary 获取组合风险概要
func (s *RiskAnalyticsApplicationService) GetRiskSummary(ctx context.Context, portfolioID string) (*RiskSummaryDTO, error) {
	return s.queryService.GetRiskSummary(ctx, portfolioID)
}
