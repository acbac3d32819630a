package domain

import "context"

// HistoryRepository 历史风险序列访问接口。实现必须保证：同一组合 ID 的序列数值
// 在进程生命周期内稳定；返回的序列归调用方所有，调用方的修改不影响后续读取。
type HistoryRepository interface {
	GetHistory(ctx context.Context, portfolioID string) ([]HistoricalRiskPoint, error)
}
