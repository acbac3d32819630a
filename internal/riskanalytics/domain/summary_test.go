package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func scenarioPosition(t *testing.T, class AssetClass, pnl string) ScenarioPosition {
	t.Helper()
	return ScenarioPosition{
		Position: Position{
			Ticker:         "TICKER_0",
			AssetClass:     class,
			MarketValueUSD: decimal.NewFromInt(1),
		},
		ScenarioPnL: mustDecimal(t, pnl),
	}
}

func TestSummarizeGroupsAndTotal(t *testing.T) {
	positions := []ScenarioPosition{
		scenarioPosition(t, AssetClassFX, "10.25"),
		scenarioPosition(t, AssetClassEquity, "-100.50"),
		scenarioPosition(t, AssetClassCommodity, "30"),
		scenarioPosition(t, AssetClassEquity, "-50.50"),
		scenarioPosition(t, AssetClassFixedIncome, "7.75"),
		scenarioPosition(t, AssetClassCommodity, "-10"),
	}

	rows, total := Summarize(positions)

	wantRows := []struct {
		assetClass string
		totalPnL   string
		avgPnL     string
		positions  int
	}{
		{"Commodity", "20", "10", 2},
		{"Equity", "-151", "-75.5", 2},
		{"FX", "10.25", "10.25", 1},
		{"Fixed Income", "7.75", "7.75", 1},
	}

	if len(rows) != len(wantRows)+1 {
		t.Fatalf("row count %d, want %d", len(rows), len(wantRows)+1)
	}
	for i, want := range wantRows {
		row := rows[i]
		if row.AssetClass != want.assetClass {
			t.Fatalf("row %d: asset class %q, want %q", i, row.AssetClass, want.assetClass)
		}
		if !row.TotalPnL.Equal(mustDecimal(t, want.totalPnL)) {
			t.Fatalf("row %d: total pnl %s, want %s", i, row.TotalPnL, want.totalPnL)
		}
		if row.AvgPnL == nil {
			t.Fatalf("row %d: missing average pnl", i)
		}
		if !row.AvgPnL.Equal(mustDecimal(t, want.avgPnL)) {
			t.Fatalf("row %d: avg pnl %s, want %s", i, row.AvgPnL, want.avgPnL)
		}
		if row.Positions != want.positions {
			t.Fatalf("row %d: position count %d, want %d", i, row.Positions, want.positions)
		}
	}

	totalRow := rows[len(rows)-1]
	if totalRow.AssetClass != TotalRowLabel {
		t.Fatalf("last row labeled %q, want %q", totalRow.AssetClass, TotalRowLabel)
	}
	if totalRow.AvgPnL != nil {
		t.Fatalf("total row carries average pnl %s", totalRow.AvgPnL)
	}
	if totalRow.Positions != len(positions) {
		t.Fatalf("total row position count %d, want %d", totalRow.Positions, len(positions))
	}
	if want := mustDecimal(t, "-113"); !total.Equal(want) || !totalRow.TotalPnL.Equal(want) {
		t.Fatalf("total pnl %s / %s, want %s", total, totalRow.TotalPnL, want)
	}
}

// 总计行的盈亏必须与逐仓相加的结果完全一致，分组顺序不得影响守恒。
func TestSummarizeConservation(t *testing.T) {
	engine := NewScenarioEngine()
	library := NewScenarioLibrary()
	generator := NewPositionGenerator()

	for _, portfolioID := range []string{"Portfolio A", "Portfolio B", "Portfolio C"} {
		for _, scenario := range library.List() {
			if scenario.Name == ScenarioCustom {
				continue
			}
			positions, err := engine.ApplyShock(generator.Generate(portfolioID), scenario.Shock)
			if err != nil {
				t.Fatalf("%s/%s: ApplyShock: %v", portfolioID, scenario.Name, err)
			}

			rows, total := Summarize(positions)

			flat := decimal.Zero
			for _, p := range positions {
				flat = flat.Add(p.ScenarioPnL)
			}
			if !total.Equal(flat) {
				t.Fatalf("%s/%s: total %s differs from flat sum %s", portfolioID, scenario.Name, total, flat)
			}

			groupSum := decimal.Zero
			groupCount := 0
			for _, row := range rows[:len(rows)-1] {
				groupSum = groupSum.Add(row.TotalPnL)
				groupCount += row.Positions
			}
			if !groupSum.Equal(flat) {
				t.Fatalf("%s/%s: group sum %s differs from flat sum %s", portfolioID, scenario.Name, groupSum, flat)
			}
			if groupCount != len(positions) {
				t.Fatalf("%s/%s: group count %d, want %d", portfolioID, scenario.Name, groupCount, len(positions))
			}

			for i := 1; i < len(rows)-1; i++ {
				if rows[i-1].AssetClass >= rows[i].AssetClass {
					t.Fatalf("%s/%s: rows not sorted: %q before %q", portfolioID, scenario.Name, rows[i-1].AssetClass, rows[i].AssetClass)
				}
			}
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	rows, total := Summarize(nil)

	if len(rows) != 1 {
		t.Fatalf("row count %d, want 1", len(rows))
	}
	if rows[0].AssetClass != TotalRowLabel {
		t.Fatalf("row labeled %q, want %q", rows[0].AssetClass, TotalRowLabel)
	}
	if !total.IsZero() || !rows[0].TotalPnL.IsZero() {
		t.Fatalf("empty book produced total %s", total)
	}
	if rows[0].AvgPnL != nil {
		t.Fatal("empty book produced average pnl")
	}
	if rows[0].Positions != 0 {
		t.Fatalf("empty book produced position count %d", rows[0].Positions)
	}
}

func TestHistogramPnL(t *testing.T) {
	var positions []ScenarioPosition
	for i := 0; i < 10; i++ {
		positions = append(positions, scenarioPosition(t, AssetClassEquity, decimal.NewFromInt(int64(i)).String()))
	}

	bins := HistogramPnL(positions, 5)

	if len(bins) != 5 {
		t.Fatalf("bin count %d, want 5", len(bins))
	}
	totalCount := 0
	for i, b := range bins {
		if b.High.LessThan(b.Low) {
			t.Fatalf("bin %d: high %s below low %s", i, b.High, b.Low)
		}
		totalCount += b.Count
	}
	if totalCount != len(positions) {
		t.Fatalf("binned count %d, want %d", totalCount, len(positions))
	}
	if bins[0].Count != 2 || bins[4].Count != 2 {
		t.Fatalf("uniform values spread unevenly: first %d last %d", bins[0].Count, bins[4].Count)
	}
}

func TestHistogramPnLDegenerate(t *testing.T) {
	positions := []ScenarioPosition{
		scenarioPosition(t, AssetClassEquity, "42.42"),
		scenarioPosition(t, AssetClassEquity, "42.42"),
	}

	bins := HistogramPnL(positions, 30)

	if len(bins) != 1 {
		t.Fatalf("bin count %d, want 1", len(bins))
	}
	if bins[0].Count != 2 {
		t.Fatalf("bin count %d, want 2", bins[0].Count)
	}
	if !bins[0].Low.Equal(bins[0].High) {
		t.Fatalf("degenerate bin bounds differ: %s vs %s", bins[0].Low, bins[0].High)
	}
}

func TestHistogramPnLEmpty(t *testing.T) {
	if bins := HistogramPnL(nil, 30); bins != nil {
		t.Fatalf("empty input produced %d bins", len(bins))
	}
	if bins := HistogramPnL([]ScenarioPosition{scenarioPosition(t, AssetClassFX, "1")}, 0); bins != nil {
		t.Fatal("non-positive bin count produced bins")
	}
}
