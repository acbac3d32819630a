// Package domain 包含风险分析服务的领域模型与计算引擎
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetClass 资产类别
type AssetClass string

const (
	AssetClassEquity      AssetClass = "Equity"
	AssetClassFixedIncome AssetClass = "Fixed Income"
	AssetClassFX          AssetClass = "FX"
	AssetClassCommodity   AssetClass = "Commodity"
)

// AssetClasses 全部资产类别，顺序即类别抽样顺序
func AssetClasses() []AssetClass {
	return []AssetClass{AssetClassEquity, AssetClassFixedIncome, AssetClassFX, AssetClassCommodity}
}

// Valid 判断资产类别是否合法
func (a AssetClass) Valid() bool {
	switch a {
	case AssetClassEquity, AssetClassFixedIncome, AssetClassFX, AssetClassCommodity:
		return true
	}
	return false
}

// ErrInvalidPosition 持仓不满足合约约束
var ErrInvalidPosition = errors.New("invalid position")

// Position 持仓，市值为正，敏感度按资产类别稀疏填充
type Position struct {
	Ticker         string          `json:"ticker"`
	AssetClass     AssetClass      `json:"asset_class"`
	MarketValueUSD decimal.Decimal `json:"market_value_usd"`
	BetaSpx        decimal.Decimal `json:"beta_spx"`
	Duration       decimal.Decimal `json:"duration"`
	DeltaOil       decimal.Decimal `json:"delta_oil"`
}

// Validate 校验持仓合约约束，外部持仓簿在计算前必须通过校验
func (p Position) Validate() error {
	if p.Ticker == "" {
		return fmt.Errorf("%w: empty ticker", ErrInvalidPosition)
	}
	if !p.AssetClass.Valid() {
		return fmt.Errorf("%w: unknown asset class %q for %s", ErrInvalidPosition, string(p.AssetClass), p.Ticker)
	}
	if p.MarketValueUSD.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: non-positive market value %s for %s", ErrInvalidPosition, p.MarketValueUSD, p.Ticker)
	}
	return nil
}
