package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// bps 与小数收益率的换算基数
var bpsPerUnit = decimal.NewFromInt(10_000)

// ScenarioPosition 应用情景后的持仓，P&L 仅在此类型上存在
type ScenarioPosition struct {
	Position
	ScenarioPnL decimal.Decimal `json:"scenario_pnl"`
}

// ScenarioEngine 单期线性因子情景引擎。
// scenarioPnl = marketValue * (betaSpx*spxShock + deltaOil*oilShock - duration*ratesShock)
type ScenarioEngine struct{}

// NewScenarioEngine 创建情景引擎
func NewScenarioEngine() *ScenarioEngine {
	return &ScenarioEngine{}
}

// ApplyShock 对持仓簿应用冲击。纯函数：返回新序列，输入持仓不会被修改，
// 对同一持仓簿的多次调用相互独立。持仓簿违反合约约束时立即报错。
func (e *ScenarioEngine) ApplyShock(positions []Position, shock ScenarioShock) ([]ScenarioPosition, error) {
	ratesShock := shock.RatesShockBps.Div(bpsPerUnit)

	out := make([]ScenarioPosition, 0, len(positions))
	for i, p := range positions {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}

		impact := p.BetaSpx.Mul(shock.SpxShock).
			Add(p.DeltaOil.Mul(shock.OilShock)).
			Sub(p.Duration.Mul(ratesShock))

		out = append(out, ScenarioPosition{
			Position:    p,
			ScenarioPnL: p.MarketValueUSD.Mul(impact),
		})
	}

	return out, nil
}
