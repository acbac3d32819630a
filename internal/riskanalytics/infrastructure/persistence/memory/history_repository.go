package memory

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/pkg/metrics"
)

// historyRepository 在内存中缓存各组合的历史风险序列。
// 序列按组合惰性生成，生成后不再变化；GetHistory 返回副本，
// 调用方修改返回值不会影响缓存内容。
type historyRepository struct {
	mu        sync.RWMutex
	histories map[string][]domain.HistoricalRiskPoint
	generator *domain.HistoryGenerator
	group     singleflight.Group
	collector metrics.MetricsCollector
}

func NewHistoryRepository(generator *domain.HistoryGenerator, collector metrics.MetricsCollector) domain.HistoryRepository {
	return &historyRepository{
		histories: make(map[string][]domain.HistoricalRiskPoint),
		generator: generator,
		collector: collector,
	}
}

func (r *historyRepository) GetHistory(ctx context.Context, portfolioID string) ([]domain.HistoricalRiskPoint, error) {
	r.mu.RLock()
	points, ok := r.histories[portfolioID]
	r.mu.RUnlock()
	if ok {
		r.collector.RecordHistoryCacheHit()
		return slices.Clone(points), nil
	}

	// singleflight 保证并发首次访问同一组合时只生成一次。
	v, err, _ := r.group.Do(portfolioID, func() (interface{}, error) {
		r.mu.RLock()
		cached, ok := r.histories[portfolioID]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		r.collector.RecordHistoryCacheMiss()
		generated := r.generator.Generate(portfolioID)

		r.mu.Lock()
		r.histories[portfolioID] = generated
		r.mu.Unlock()
		return generated, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]domain.HistoricalRiskPoint)), nil
}
