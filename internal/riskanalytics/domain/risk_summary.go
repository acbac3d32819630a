package domain

import (
	"errors"
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

// ErrEmptyHistory 历史序列为空
var ErrEmptyHistory = errors.New("empty history")

// RiskSummary 历史风险概览，面向仪表盘的速览指标
type RiskSummary struct {
	PortfolioID          string          `json:"portfolio_id"`
	AsOf                 time.Time       `json:"as_of"`
	LatestNAV            decimal.Decimal `json:"latest_nav"`
	LatestVaR99USD       decimal.Decimal `json:"latest_var_99_usd"`
	LatestES99USD        decimal.Decimal `json:"latest_es_99_usd"`
	MaxDrawdownPct       decimal.Decimal `json:"max_drawdown_pct"`
	MeanDailyReturn      float64         `json:"mean_daily_return"`
	AnnualizedVolatility float64         `json:"annualized_volatility"`
}

// SummarizeHistory 汇总历史风险序列的速览指标
func SummarizeHistory(portfolioID string, points []HistoricalRiskPoint) (RiskSummary, error) {
	if len(points) == 0 {
		return RiskSummary{}, ErrEmptyHistory
	}

	last := points[len(points)-1]
	maxDrawdown := points[0].DrawdownPct

	returns := make([]float64, 0, len(points)-1)
	prev := points[0].NAV.InexactFloat64()
	for _, p := range points[1:] {
		cur := p.NAV.InexactFloat64()
		returns = append(returns, cur/prev-1)
		prev = cur

		if p.DrawdownPct.LessThan(maxDrawdown) {
			maxDrawdown = p.DrawdownPct
		}
	}

	var meanReturn, annualizedVol float64
	if len(returns) > 0 {
		meanReturn, _ = stats.Mean(returns)
		stddev, _ := stats.StandardDeviation(returns)
		annualizedVol = stddev * math.Sqrt(tradingDaysPerYear)
	}

	return RiskSummary{
		PortfolioID:          portfolioID,
		AsOf:                 last.Date,
		LatestNAV:            last.NAV,
		LatestVaR99USD:       last.VaR99USD,
		LatestES99USD:        last.ES99USD,
		MaxDrawdownPct:       maxDrawdown,
		MeanDailyReturn:      meanReturn,
		AnnualizedVolatility: annualizedVol,
	}, nil
}
