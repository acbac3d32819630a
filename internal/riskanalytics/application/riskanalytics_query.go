package application

import (
	"context"
	"fmt"
	"slices"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/pkg/metrics"
)

// RiskAnalyticsQueryService 风险分析查询服务
type RiskAnalyticsQueryService struct {
	generator   *domain.PositionGenerator
	library     *domain.ScenarioLibrary
	historyRepo domain.HistoryRepository
	collector   metrics.MetricsCollector
	portfolios  []string
}

// NewRiskAnalyticsQueryService 创建风险分析查询服务实例
func NewRiskAnalyticsQueryService(
	generator *domain.PositionGenerator,
	library *domain.ScenarioLibrary,
	historyRepo domain.HistoryRepository,
	collector metrics.MetricsCollector,
	portfolios []string,
) *RiskAnalyticsQueryService {
	return &RiskAnalyticsQueryService{
		generator:   generator,
		library:     library,
		historyRepo: historyRepo,
		collector:   collector,
		portfolios:  slices.Clone(portfolios),
	}
}

// ListPortfolios 返回可选组合清单
func (s *RiskAnalyticsQueryService) ListPortfolios(ctx context.Context) []string {
	return slices.Clone(s.portfolios)
}

// ListScenarios 返回情景库全量清单
func (s *RiskAnalyticsQueryService) ListScenarios(ctx context.Context) []ScenarioDTO {
	list := s.library.List()
	dtos := make([]ScenarioDTO, 0, len(list))
	for _, scenario := range list {
		dtos = append(dtos, toScenarioDTO(scenario))
	}
	return dtos
}

// GetPositions 返回组合生成的持仓簿
func (s *RiskAnalyticsQueryService) GetPositions(ctx context.Context, portfolioID string) ([]PositionDTO, error) {
	if portfolioID == "" {
		return nil, ErrPortfolioIDRequired
	}
	positions := s.generator.Generate(portfolioID)
	s.collector.RecordBookGenerated()
	return toPositionDTOs(positions), nil
}

// GetRiskHistory 返回组合的历史风险序列
func (s *RiskAnalyticsQueryService) GetRiskHistory(ctx context.Context, portfolioID string) ([]RiskPointDTO, error) {
	if portfolioID == "" {
		return nil, ErrPortfolioIDRequired
	}
	points, err := s.historyRepo.GetHistory(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("load risk history: %w", err)
	}
	return toRiskPointDTOs(points), nil
}

// GetRiskSummary 返回组合的风险概要
func (s *RiskAnalyticsQueryService) GetRiskSummary(ctx context.Context, portfolioID string) (*RiskSummaryDTO, error) {
	if portfolioID == "" {
		return nil, ErrPortfolioIDRequired
	}
	points, err := s.historyRepo.GetHistory(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("load risk history: %w", err)
	}
	summary, err := domain.SummarizeHistory(portfolioID, points)
	if err != nil {
		return nil, err
	}
	return &RiskSummaryDTO{
		PortfolioID:          summary.PortfolioID,
		AsOf:                 summary.AsOf,
		LatestNAV:            summary.LatestNAV,
		LatestVaR99USD:       summary.LatestVaR99USD,
		LatestES99USD:        summary.LatestES99USD,
		MaxDrawdownPct:       summary.MaxDrawdownPct,
		MeanDailyReturn:      summary.MeanDailyReturn,
		AnnualizedVolatility: summary.AnnualizedVolatility,
	}, nil
}
