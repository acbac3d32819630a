package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/pkg/logger"
	"github.com/wyfcoding/riskanalytics/pkg/metrics"
)

// ErrPortfolioIDRequired 未指定组合时返回
var ErrPortfolioIDRequired = errors.New("portfolio id is required")

// RunScenarioCommand 情景压力测试命令
type RunScenarioCommand struct {
	PortfolioID  string
	ScenarioName string
	Custom       *CustomShockInput
}

// CustomShockInput 自定义冲击输入，股指与油价为百分数，利率为基点。
// 未提供或非有限的数值按零冲击处理。
type CustomShockInput struct {
	SpxShockPct   *float64
	RatesShockBps *float64
	OilShockPct   *float64
}

// RiskAnalyticsCommandService 风险分析命令服务
type RiskAnalyticsCommandService struct {
	generator     *domain.PositionGenerator
	engine        *domain.ScenarioEngine
	library       *domain.ScenarioLibrary
	publisher     domain.EventPublisher
	collector     metrics.MetricsCollector
	histogramBins int
}

// NewRiskAnalyticsCommandService 创建风险分析命令服务实例
func NewRiskAnalyticsCommandService(
	generator *domain.PositionGenerator,
	engine *domain.ScenarioEngine,
	library *domain.ScenarioLibrary,
	publisher domain.EventPublisher,
	collector metrics.MetricsCollector,
	histogramBins int,
) *RiskAnalyticsCommandService {
	return &RiskAnalyticsCommandService{
		generator:     generator,
		engine:        engine,
		library:       library,
		publisher:     publisher,
		collector:     collector,
		histogramBins: histogramBins,
	}
}

// RunScenario 对指定组合执行一次情景压力测试并返回完整结果
func (s *RiskAnalyticsCommandService) RunScenario(ctx context.Context, cmd RunScenarioCommand) (*ScenarioRunResult, error) {
	if cmd.PortfolioID == "" {
		return nil, ErrPortfolioIDRequired
	}
	start := time.Now()

	scenario := s.resolveScenario(ctx, cmd)

	positions := s.generator.Generate(cmd.PortfolioID)
	s.collector.RecordBookGenerated()

	shocked, err := s.engine.ApplyShock(positions, scenario.Shock)
	if err != nil {
		return nil, fmt.Errorf("apply shock: %w", err)
	}

	rows, total := domain.Summarize(shocked)
	bins := domain.HistogramPnL(shocked, s.histogramBins)

	runID := uuid.New().String()
	event := domain.ScenarioRunCompletedEvent{
		RunID:         runID,
		PortfolioID:   cmd.PortfolioID,
		ScenarioName:  scenario.Name,
		TotalPnL:      total,
		PositionCount: len(shocked),
		Timestamp:     time.Now(),
	}
	// 事件发布失败不影响本次运行结果
	err = s.publisher.PublishScenarioRunCompleted(ctx, event)
	s.collector.RecordEventPublished(err)
	if err != nil {
		logger.Error(ctx, "failed to publish scenario run event", "error", err, "run_id", runID)
	}

	s.collector.RecordScenarioRun(time.Since(start).Seconds())
	logger.Info(ctx, "scenario run completed",
		"run_id", runID,
		"portfolio_id", cmd.PortfolioID,
		"scenario", scenario.Name,
		"total_pnl", total.String(),
		"positions", len(shocked),
	)

	return &ScenarioRunResult{
		RunID:        runID,
		PortfolioID:  cmd.PortfolioID,
		ScenarioName: scenario.Name,
		Shock:        toShockDTO(scenario.Shock),
		Positions:    toScenarioPositionDTOs(shocked),
		Summary:      toSummaryRowDTOs(rows),
		TotalPnL:     total,
		Histogram:    toPnLBinDTOs(bins),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// resolveScenario 将命令映射到情景，名称为空或未知时回退到基准情景
func (s *RiskAnalyticsCommandService) resolveScenario(ctx context.Context, cmd RunScenarioCommand) domain.Scenario {
	if cmd.ScenarioName == domain.ScenarioCustom {
		var spx, rates, oil *float64
		if cmd.Custom != nil {
			spx = cmd.Custom.SpxShockPct
			rates = cmd.Custom.RatesShockBps
			oil = cmd.Custom.OilShockPct
		}
		return domain.CustomScenario(spx, rates, oil)
	}
	if cmd.ScenarioName == "" {
		return s.library.Resolve(cmd.ScenarioName)
	}
	scenario, ok := s.library.Get(cmd.ScenarioName)
	if !ok {
		logger.Warn(ctx, "unknown scenario, falling back to baseline", "scenario", cmd.ScenarioName)
		return s.library.Resolve(cmd.ScenarioName)
	}
	return scenario
}
