// Package domain 风险分析服务领域事件
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// ScenarioRunCompletedEvent 情景运行完成事件
type ScenarioRunCompletedEvent struct {
	RunID         string          `json:"run_id"`
	PortfolioID   string          `json:"portfolio_id"`
	ScenarioName  string          `json:"scenario_name"`
	TotalPnL      decimal.Decimal `json:"total_pnl"`
	PositionCount int             `json:"position_count"`
	Timestamp     time.Time       `json:"timestamp"`
}

func (e *ScenarioRunCompletedEvent) EventName() string     { return "riskanalytics.scenario_run_completed" }
func (e *ScenarioRunCompletedEvent) OccurredAt() time.Time { return e.Timestamp }
