package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// 预定义情景名称
const (
	ScenarioBaseline       = "None (Baseline)"
	ScenarioMarketCrash    = "Market Crash (-15% SPX)"
	ScenarioRatesShock     = "Rates Shock (+50bps)"
	ScenarioOilSpike       = "Oil Spike (+20%)"
	ScenarioRecessionCombo = "Recession Combo (-10% SPX, -75bps Rates)"
	// ScenarioCustom 自定义情景占位名，实际冲击由调用方输入构造
	ScenarioCustom = "Custom"
)

// ScenarioShock 三因子冲击：SPX 与油价为小数收益率，利率为基点
type ScenarioShock struct {
	SpxShock      decimal.Decimal `json:"spx_shock"`
	RatesShockBps decimal.Decimal `json:"rates_shock_bps"`
	OilShock      decimal.Decimal `json:"oil_shock"`
}

// IsZero 判断是否为零冲击
func (s ScenarioShock) IsZero() bool {
	return s.SpxShock.IsZero() && s.RatesShockBps.IsZero() && s.OilShock.IsZero()
}

// Scenario 命名情景
type Scenario struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Shock       ScenarioShock `json:"shock"`
}

// ScenarioLibrary 预定义情景库
type ScenarioLibrary struct {
	order     []string
	scenarios map[string]Scenario
}

// NewScenarioLibrary 创建情景库并载入预定义情景
func NewScenarioLibrary() *ScenarioLibrary {
	l := &ScenarioLibrary{
		scenarios: make(map[string]Scenario),
	}
	l.initDefaultScenarios()
	return l
}

// initDefaultScenarios 初始化预定义情景
func (l *ScenarioLibrary) initDefaultScenarios() {
	l.register(Scenario{
		Name:        ScenarioBaseline,
		Description: "No shocks applied",
	})
	l.register(Scenario{
		Name:        ScenarioMarketCrash,
		Description: "S&P 500 drops 15%",
		Shock: ScenarioShock{
			SpxShock: decimal.NewFromFloat(-0.15),
		},
	})
	l.register(Scenario{
		Name:        ScenarioRatesShock,
		Description: "Interest rates rise 50 basis points",
		Shock: ScenarioShock{
			RatesShockBps: decimal.NewFromInt(50),
		},
	})
	l.register(Scenario{
		Name:        ScenarioOilSpike,
		Description: "Oil price jumps 20%",
		Shock: ScenarioShock{
			OilShock: decimal.NewFromFloat(0.20),
		},
	})
	l.register(Scenario{
		Name:        ScenarioRecessionCombo,
		Description: "Equity selloff with falling rates and oil",
		Shock: ScenarioShock{
			SpxShock:      decimal.NewFromFloat(-0.10),
			RatesShockBps: decimal.NewFromInt(-75),
			OilShock:      decimal.NewFromFloat(-0.10),
		},
	})
}

func (l *ScenarioLibrary) register(s Scenario) {
	l.order = append(l.order, s.Name)
	l.scenarios[s.Name] = s
}

// List 返回固定顺序的情景目录，末尾附自定义占位项供前端发现
func (l *ScenarioLibrary) List() []Scenario {
	out := make([]Scenario, 0, len(l.order)+1)
	for _, name := range l.order {
		out = append(out, l.scenarios[name])
	}
	out = append(out, Scenario{
		Name:        ScenarioCustom,
		Description: "Caller-supplied shocks",
	})
	return out
}

// Get 精确查找命名情景
func (l *ScenarioLibrary) Get(name string) (Scenario, bool) {
	s, ok := l.scenarios[name]
	return s, ok
}

// Resolve 查找命名情景，未知或空名称回退到基线情景
func (l *ScenarioLibrary) Resolve(name string) Scenario {
	if s, ok := l.scenarios[name]; ok {
		return s
	}
	return l.scenarios[ScenarioBaseline]
}

// CustomScenario 构造自定义情景。SPX 与油价输入为百分比（除以 100 转为小数收益率），
// 利率输入为基点原值。缺失或非数值输入一律按 0 处理，显示名回显原始输入。
func CustomScenario(spxShockPct, ratesShockBps, oilShockPct *float64) Scenario {
	spx := sanitizeShockInput(spxShockPct)
	rates := sanitizeShockInput(ratesShockBps)
	oil := sanitizeShockInput(oilShockPct)

	return Scenario{
		Name:        fmt.Sprintf("Custom (%g%%, %gbps, %g%%)", spx, rates, oil),
		Description: "Caller-supplied shocks",
		Shock: ScenarioShock{
			SpxShock:      decimal.NewFromFloat(spx).Shift(-2),
			RatesShockBps: decimal.NewFromFloat(rates),
			OilShock:      decimal.NewFromFloat(oil).Shift(-2),
		},
	}
}

// sanitizeShockInput 缺失或非数值（NaN、±Inf）输入按 0 处理
func sanitizeShockInput(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}
