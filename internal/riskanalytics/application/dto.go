package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
)

// PositionDTO represents one position of a generated portfolio book
type PositionDTO struct {
	Ticker         string          `json:"ticker"`
	AssetClass     string          `json:"asset_class"`
	MarketValueUSD decimal.Decimal `json:"market_value_usd"`
	BetaSpx        decimal.Decimal `json:"beta_spx"`
	Duration       decimal.Decimal `json:"duration"`
	DeltaOil       decimal.Decimal `json:"delta_oil"`
}

// ScenarioPositionDTO represents a position together with its shocked P&L
type ScenarioPositionDTO struct {
	PositionDTO
	ScenarioPnL decimal.Decimal `json:"scenario_pnl"`
}

// ShockDTO represents the market shocks of a scenario
type ShockDTO struct {
	SpxShock      decimal.Decimal `json:"spx_shock"`
	RatesShockBps decimal.Decimal `json:"rates_shock_bps"`
	OilShock      decimal.Decimal `json:"oil_shock"`
}

// ScenarioDTO represents a selectable stress scenario
type ScenarioDTO struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Shock       ShockDTO `json:"shock"`
}

// SummaryRowDTO represents one asset class row of the scenario P&L summary.
// AvgPnL is null on the TOTAL row where an average is undefined.
type SummaryRowDTO struct {
	AssetClass string           `json:"asset_class"`
	TotalPnL   decimal.Decimal  `json:"total_pnl"`
	AvgPnL     *decimal.Decimal `json:"avg_pnl"`
	Positions  int              `json:"positions"`
}

// PnLBinDTO represents one bucket of the P&L distribution histogram
type PnLBinDTO struct {
	Low   decimal.Decimal `json:"low"`
	High  decimal.Decimal `json:"high"`
	Count int             `json:"count"`
}

// ScenarioRunResult represents the full outcome of one scenario run
type ScenarioRunResult struct {
	RunID        string                `json:"run_id"`
	PortfolioID  string                `json:"portfolio_id"`
	ScenarioName string                `json:"scenario_name"`
	Shock        ShockDTO              `json:"shock"`
	Positions    []ScenarioPositionDTO `json:"positions"`
	Summary      []SummaryRowDTO       `json:"summary"`
	TotalPnL     decimal.Decimal       `json:"total_pnl"`
	Histogram    []PnLBinDTO           `json:"histogram"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

// RiskPointDTO represents one day of the historical risk series
type RiskPointDTO struct {
	Date        time.Time       `json:"date"`
	NAV         decimal.Decimal `json:"nav"`
	VaR99USD    decimal.Decimal `json:"var_99_usd"`
	ES99USD     decimal.Decimal `json:"es_99_usd"`
	DrawdownPct decimal.Decimal `json:"drawdown_pct"`
}

// RiskSummaryDTO represents headline risk figures of a portfolio
type RiskSummaryDTO struct {
	PortfolioID          string          `json:"portfolio_id"`
	AsOf                 time.Time       `json:"as_of"`
	LatestNAV            decimal.Decimal `json:"latest_nav"`
	LatestVaR99USD       decimal.Decimal `json:"latest_var_99_usd"`
	LatestES99USD        decimal.Decimal `json:"latest_es_99_usd"`
	MaxDrawdownPct       decimal.Decimal `json:"max_drawdown_pct"`
	MeanDailyReturn      float64         `json:"mean_daily_return"`
	AnnualizedVolatility float64         `json:"annualized_volatility"`
}

func toPositionDTO(p domain.Position) PositionDTO {
	return PositionDTO{
		Ticker:         p.Ticker,
		AssetClass:     string(p.AssetClass),
		MarketValueUSD: p.MarketValueUSD,
		BetaSpx:        p.BetaSpx,
		Duration:       p.Duration,
		DeltaOil:       p.DeltaOil,
	}
}

func toPositionDTOs(positions []domain.Position) []PositionDTO {
	dtos := make([]PositionDTO, 0, len(positions))
	for _, p := range positions {
		dtos = append(dtos, toPositionDTO(p))
	}
	return dtos
}

func toScenarioPositionDTOs(positions []domain.ScenarioPosition) []ScenarioPositionDTO {
	dtos := make([]ScenarioPositionDTO, 0, len(positions))
	for _, p := range positions {
		dtos = append(dtos, ScenarioPositionDTO{
			PositionDTO: toPositionDTO(p.Position),
			ScenarioPnL: p.ScenarioPnL,
		})
	}
	return dtos
}

func toShockDTO(shock domain.ScenarioShock) ShockDTO {
	return ShockDTO{
		SpxShock:      shock.SpxShock,
		RatesShockBps: shock.RatesShockBps,
		OilShock:      shock.OilShock,
	}
}

func toScenarioDTO(s domain.Scenario) ScenarioDTO {
	return ScenarioDTO{
		Name:        s.Name,
		Description: s.Description,
		Shock:       toShockDTO(s.Shock),
	}
}

func toSummaryRowDTOs(rows []domain.SummaryRow) []SummaryRowDTO {
	dtos := make([]SummaryRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, SummaryRowDTO{
			AssetClass: row.AssetClass,
			TotalPnL:   row.TotalPnL,
			AvgPnL:     row.AvgPnL,
			Positions:  row.Positions,
		})
	}
	return dtos
}

func toPnLBinDTOs(bins []domain.PnLBin) []PnLBinDTO {
	dtos := make([]PnLBinDTO, 0, len(bins))
	for _, b := range bins {
		dtos = append(dtos, PnLBinDTO{Low: b.Low, High: b.High, Count: b.Count})
	}
	return dtos
}

func toRiskPointDTOs(points []domain.HistoricalRiskPoint) []RiskPointDTO {
	dtos := make([]RiskPointDTO, 0, len(points))
	for _, p := range points {
		dtos = append(dtos, RiskPointDTO{
			Date:        p.Date,
			NAV:         p.NAV,
			VaR99USD:    p.VaR99USD,
			ES99USD:     p.ES99USD,
			DrawdownPct: p.DrawdownPct,
		})
	}
	return dtos
}
