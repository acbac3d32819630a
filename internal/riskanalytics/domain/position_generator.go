package domain

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

const (
	minPositionCount  = 10
	maxPositionCount  = 30
	minMarketValueUSD = 50_000
	maxMarketValueUSD = 5_000_000

	probEquity      = 0.50
	probFixedIncome = 0.20
	probFX          = 0.15
)

// Seed 组合 ID 的确定性种子（字符码点求和）
func Seed(portfolioID string) uint64 {
	var seed uint64
	for _, r := range portfolioID {
		seed += uint64(r)
	}
	return seed
}

// PositionGenerator 确定性持仓簿生成器，同一组合 ID 永远生成同一份持仓簿
type PositionGenerator struct{}

// NewPositionGenerator 创建持仓簿生成器
func NewPositionGenerator() *PositionGenerator {
	return &PositionGenerator{}
}

// Generate 依据组合 ID 生成持仓簿
func (g *PositionGenerator) Generate(portfolioID string) []Position {
	rng := rand.New(rand.NewPCG(Seed(portfolioID), 0))

	n := minPositionCount + rng.IntN(maxPositionCount-minPositionCount)
	positions := make([]Position, 0, n)

	for i := 0; i < n; i++ {
		class := drawAssetClass(rng)

		marketValue := minMarketValueUSD + rng.Float64()*(maxMarketValueUSD-minMarketValueUSD)

		// Beta 按类别二选一：权益类以 1.0 为中心，其余类别以 0.1 为中心
		var beta float64
		if class == AssetClassEquity {
			beta = 1.0 + 0.5*rng.NormFloat64()
		} else {
			beta = 0.1 + 0.1*rng.NormFloat64()
		}

		// 久期只对固收类抽样，且不允许为负
		var duration float64
		if class == AssetClassFixedIncome {
			duration = 5.0 + 2.0*rng.NormFloat64()
			if duration < 0 {
				duration = 0
			}
		}

		// 油价敏感度只对商品类抽样
		var deltaOil float64
		if class == AssetClassCommodity {
			deltaOil = 0.05 + 0.2*rng.NormFloat64()
		}

		positions = append(positions, Position{
			Ticker:         fmt.Sprintf("TICKER_%d", i),
			AssetClass:     class,
			MarketValueUSD: decimal.NewFromFloat(marketValue).Round(2),
			BetaSpx:        decimal.NewFromFloat(beta).Round(3),
			Duration:       decimal.NewFromFloat(duration).Round(3),
			DeltaOil:       decimal.NewFromFloat(deltaOil).Round(3),
		})
	}

	return positions
}

// drawAssetClass 按固定概率抽取资产类别
func drawAssetClass(rng *rand.Rand) AssetClass {
	u := rng.Float64()
	switch {
	case u < probEquity:
		return AssetClassEquity
	case u < probEquity+probFixedIncome:
		return AssetClassFixedIncome
	case u < probEquity+probFixedIncome+probFX:
		return AssetClassFX
	default:
		return AssetClassCommodity
	}
}
