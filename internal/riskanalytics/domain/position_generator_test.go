package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		name        string
		portfolioID string
		want        uint64
	}{
		{"empty", "", 0},
		{"single char", "A", 65},
		{"two chars", "AB", 131},
		{"portfolio name", "Portfolio A", 1055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Seed(tt.portfolioID); got != tt.want {
				t.Fatalf("Seed(%q) = %d, want %d", tt.portfolioID, got, tt.want)
			}
		})
	}
}

func TestGeneratePositionsDeterminism(t *testing.T) {
	g := NewPositionGenerator()

	a := g.Generate("Portfolio A")
	b := g.Generate("Portfolio A")

	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Ticker != b[i].Ticker ||
			a[i].AssetClass != b[i].AssetClass ||
			!a[i].MarketValueUSD.Equal(b[i].MarketValueUSD) ||
			!a[i].BetaSpx.Equal(b[i].BetaSpx) ||
			!a[i].Duration.Equal(b[i].Duration) ||
			!a[i].DeltaOil.Equal(b[i].DeltaOil) {
			t.Fatalf("position %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratePositionsDiffer(t *testing.T) {
	g := NewPositionGenerator()

	a := g.Generate("Portfolio A")
	b := g.Generate("Portfolio B")

	if len(a) != len(b) {
		return
	}
	for i := range a {
		if !a[i].MarketValueUSD.Equal(b[i].MarketValueUSD) {
			return
		}
	}
	t.Fatal("expected different books for different portfolio ids")
}

func TestGeneratePositionsContract(t *testing.T) {
	g := NewPositionGenerator()

	minMV := decimal.NewFromInt(minMarketValueUSD)
	maxMV := decimal.NewFromInt(maxMarketValueUSD)

	for _, portfolioID := range []string{"Portfolio A", "Portfolio B", "Portfolio C", "Portfolio D", "Portfolio E"} {
		t.Run(portfolioID, func(t *testing.T) {
			positions := g.Generate(portfolioID)

			if len(positions) < minPositionCount || len(positions) >= maxPositionCount {
				t.Fatalf("position count %d out of [%d, %d)", len(positions), minPositionCount, maxPositionCount)
			}

			for i, p := range positions {
				if want := fmt.Sprintf("TICKER_%d", i); p.Ticker != want {
					t.Fatalf("ticker %q, want %q", p.Ticker, want)
				}
				if !p.AssetClass.Valid() {
					t.Fatalf("position %d: invalid asset class %q", i, p.AssetClass)
				}
				if p.MarketValueUSD.LessThan(minMV) || p.MarketValueUSD.GreaterThan(maxMV) {
					t.Fatalf("position %d: market value %s out of range", i, p.MarketValueUSD)
				}
				if p.Duration.IsNegative() {
					t.Fatalf("position %d: negative duration %s", i, p.Duration)
				}
				if p.AssetClass != AssetClassFixedIncome && !p.Duration.IsZero() {
					t.Fatalf("position %d: %s has non-zero duration %s", i, p.AssetClass, p.Duration)
				}
				if p.AssetClass != AssetClassCommodity && !p.DeltaOil.IsZero() {
					t.Fatalf("position %d: %s has non-zero delta oil %s", i, p.AssetClass, p.DeltaOil)
				}
				if err := p.Validate(); err != nil {
					t.Fatalf("position %d: generated position fails validation: %v", i, err)
				}
			}
		})
	}
}

// 跨多个组合聚合后，权益类 beta 应聚在 1.0 附近，其余类别聚在 0.1 附近，
// 以此验证 beta 按类别二选一抽样而不是两种分布叠加。
func TestGeneratePositionsBetaMasking(t *testing.T) {
	g := NewPositionGenerator()

	equitySum, otherSum := 0.0, 0.0
	equityN, otherN := 0, 0
	for i := 0; i < 100; i++ {
		for _, p := range g.Generate(fmt.Sprintf("portfolio-%d", i)) {
			if p.AssetClass == AssetClassEquity {
				equitySum += p.BetaSpx.InexactFloat64()
				equityN++
			} else {
				otherSum += p.BetaSpx.InexactFloat64()
				otherN++
			}
		}
	}

	if equityN == 0 || otherN == 0 {
		t.Fatal("expected both equity and non-equity positions across 100 portfolios")
	}
	if avg := equitySum / float64(equityN); avg < 0.7 || avg > 1.3 {
		t.Fatalf("equity beta average %f, want near 1.0", avg)
	}
	if avg := otherSum / float64(otherN); avg < -0.2 || avg > 0.4 {
		t.Fatalf("non-equity beta average %f, want near 0.1", avg)
	}
}
