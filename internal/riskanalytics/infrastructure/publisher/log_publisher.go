package publisher

import (
	"context"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/pkg/logger"
)

// LogEventPublisher 仅记录日志的事件发布者，未配置 Kafka 时使用
type LogEventPublisher struct{}

// NewLogEventPublisher 创建日志事件发布者
func NewLogEventPublisher() domain.EventPublisher {
	return &LogEventPublisher{}
}

// PublishScenarioRunCompleted 将情景运行完成事件写入日志
func (p *LogEventPublisher) PublishScenarioRunCompleted(ctx context.Context, event domain.ScenarioRunCompletedEvent) error {
	logger.Info(ctx, "scenario run completed",
		"event", event.EventName(),
		"run_id", event.RunID,
		"portfolio_id", event.PortfolioID,
		"scenario", event.ScenarioName,
		"total_pnl", event.TotalPnL.String(),
		"positions", event.PositionCount,
	)
	return nil
}
