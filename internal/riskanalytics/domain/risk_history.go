package domain

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// 两个交易年的日历日数
	historyDays = 252 * 2
	// 历史序列种子偏移，保证同一组合的持仓簿与历史序列不同源
	historySeedOffset = 1

	navStartUSD = 100_000_000

	dailyReturnMean   = 0.0005
	dailyReturnStddev = 0.01
)

// HistoricalRiskPoint 单日历史风险点
type HistoricalRiskPoint struct {
	Date        time.Time       `json:"date"`
	NAV         decimal.Decimal `json:"nav"`
	VaR99USD    decimal.Decimal `json:"var_99_usd"`
	ES99USD     decimal.Decimal `json:"es_99_usd"`
	DrawdownPct decimal.Decimal `json:"drawdown_pct"`
}

// HistoryGenerator 确定性历史风险序列生成器
type HistoryGenerator struct{}

// NewHistoryGenerator 创建历史风险序列生成器
func NewHistoryGenerator() *HistoryGenerator {
	return &HistoryGenerator{}
}

// Generate 生成以今日为终点、按日历日升序的 504 点历史风险序列。
// 数值只依赖组合 ID，日期锚定在调用当日。
func (g *HistoryGenerator) Generate(portfolioID string) []HistoricalRiskPoint {
	rng := rand.New(rand.NewPCG(Seed(portfolioID)+historySeedOffset, 0))

	end := time.Now().UTC().Truncate(24 * time.Hour)
	points := make([]HistoricalRiskPoint, 0, historyDays)

	nav := float64(navStartUSD)
	runningMax := decimal.Zero

	for i := 0; i < historyDays; i++ {
		r := dailyReturnMean + dailyReturnStddev*rng.NormFloat64()
		nav *= 1 + r

		// VaR 为 NAV 的 1%~3%，ES 为 VaR 的 1.2~1.5 倍，故 ES ≥ VaR 恒成立
		u := 0.01 + 0.02*rng.Float64()
		m := 1.2 + 0.3*rng.Float64()

		navUSD := decimal.NewFromFloat(nav).Round(2)
		varUSD := navUSD.Mul(decimal.NewFromFloat(u)).Round(2)
		esUSD := varUSD.Mul(decimal.NewFromFloat(m)).Round(2)

		if runningMax.LessThan(navUSD) {
			runningMax = navUSD
		}
		drawdown := navUSD.Sub(runningMax).Div(runningMax).Round(6)

		points = append(points, HistoricalRiskPoint{
			Date:        end.AddDate(0, 0, i-(historyDays-1)),
			NAV:         navUSD,
			VaR99USD:    varUSD,
			ES99USD:     esUSD,
			DrawdownPct: drawdown,
		})
	}

	return points
}
