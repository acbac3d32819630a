package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TotalRowLabel 总计行的资产类别标签
const TotalRowLabel = "TOTAL"

// SummaryRow 按资产类别的情景 P&L 汇总行
type SummaryRow struct {
	AssetClass string           `json:"asset_class"`
	TotalPnL   decimal.Decimal  `json:"total_pnl"`
	AvgPnL     *decimal.Decimal `json:"avg_pnl"` // nil 表示未定义
	Positions  int              `json:"positions"`
}

// Summarize 按资产类别汇总情景 P&L 并在末尾追加总计行。
// 总计行的 TotalPnL 与全部持仓 P&L 之和精确相等；AvgPnL 不定义，绝不取均值的均值。
// 分组行按资产类别名升序，顺序确定。
func Summarize(positions []ScenarioPosition) ([]SummaryRow, decimal.Decimal) {
	type group struct {
		sum   decimal.Decimal
		count int
	}
	groups := make(map[AssetClass]*group)
	for _, p := range positions {
		g, ok := groups[p.AssetClass]
		if !ok {
			g = &group{}
			groups[p.AssetClass] = g
		}
		g.sum = g.sum.Add(p.ScenarioPnL)
		g.count++
	}

	classes := make([]string, 0, len(groups))
	for class := range groups {
		classes = append(classes, string(class))
	}
	sort.Strings(classes)

	rows := make([]SummaryRow, 0, len(classes)+1)
	total := decimal.Zero
	for _, class := range classes {
		g := groups[AssetClass(class)]
		avg := g.sum.Div(decimal.NewFromInt(int64(g.count)))
		rows = append(rows, SummaryRow{
			AssetClass: class,
			TotalPnL:   g.sum,
			AvgPnL:     &avg,
			Positions:  g.count,
		})
		total = total.Add(g.sum)
	}

	rows = append(rows, SummaryRow{
		AssetClass: TotalRowLabel,
		TotalPnL:   total,
		Positions:  len(positions),
	})

	return rows, total
}

// PnLBin P&L 直方图桶，区间左闭右开，最后一桶右闭
type PnLBin struct {
	Low   decimal.Decimal `json:"low"`
	High  decimal.Decimal `json:"high"`
	Count int             `json:"count"`
}

// HistogramPnL 对持仓 P&L 做等宽直方图。空输入或非正桶数返回 nil；
// 全部 P&L 相同时退化为单桶。桶计数之和等于持仓数。
func HistogramPnL(positions []ScenarioPosition, bins int) []PnLBin {
	if len(positions) == 0 || bins <= 0 {
		return nil
	}

	values := make([]float64, len(positions))
	lo := positions[0].ScenarioPnL.InexactFloat64()
	hi := lo
	for i, p := range positions {
		v := p.ScenarioPnL.InexactFloat64()
		values[i] = v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		edge := decimal.NewFromFloat(lo).Round(2)
		return []PnLBin{{Low: edge, High: edge, Count: len(positions)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]PnLBin, bins)
	for i := range out {
		out[i] = PnLBin{
			Low:  decimal.NewFromFloat(lo + float64(i)*width).Round(2),
			High: decimal.NewFromFloat(lo + float64(i+1)*width).Round(2),
		}
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}

	return out
}
