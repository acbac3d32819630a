package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
)

type countingCollector struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (c *countingCollector) RecordHTTPRequest(method, path string, statusCode int, duration float64, responseSize int64) {
}

func (c *countingCollector) IncInFlight() {}

func (c *countingCollector) DecInFlight() {}

func (c *countingCollector) RecordScenarioRun(duration float64) {}

func (c *countingCollector) RecordBookGenerated() {}

func (c *countingCollector) RecordHistoryCacheHit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits++
}

func (c *countingCollector) RecordHistoryCacheMiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
}

func (c *countingCollector) RecordEventPublished(err error) {}

func (c *countingCollector) counts() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func samePoints(a, b []domain.HistoricalRiskPoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) ||
			!a[i].NAV.Equal(b[i].NAV) ||
			!a[i].VaR99USD.Equal(b[i].VaR99USD) ||
			!a[i].ES99USD.Equal(b[i].ES99USD) ||
			!a[i].DrawdownPct.Equal(b[i].DrawdownPct) {
			return false
		}
	}
	return true
}

func TestGetHistoryCaches(t *testing.T) {
	collector := &countingCollector{}
	repo := NewHistoryRepository(domain.NewHistoryGenerator(), collector)
	ctx := context.Background()

	first, err := repo.GetHistory(ctx, "Portfolio A")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	second, err := repo.GetHistory(ctx, "Portfolio A")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}

	if !samePoints(first, second) {
		t.Fatal("repeated reads returned different histories")
	}
	if hits, misses := collector.counts(); misses != 1 || hits != 1 {
		t.Fatalf("hits %d misses %d, want 1 and 1", hits, misses)
	}
}

func TestGetHistoryConcurrentSingleGeneration(t *testing.T) {
	collector := &countingCollector{}
	repo := NewHistoryRepository(domain.NewHistoryGenerator(), collector)
	ctx := context.Background()

	const goroutines = 16
	results := make([][]domain.HistoricalRiskPoint, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = repo.GetHistory(ctx, "Portfolio B")
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if !samePoints(results[0], results[i]) {
			t.Fatalf("goroutine %d saw a different history", i)
		}
	}
	if _, misses := collector.counts(); misses != 1 {
		t.Fatalf("misses %d, want 1", misses)
	}
}

func TestGetHistoryIsolatesCaller(t *testing.T) {
	repo := NewHistoryRepository(domain.NewHistoryGenerator(), &countingCollector{})
	ctx := context.Background()

	first, err := repo.GetHistory(ctx, "Portfolio C")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	original := first[0].NAV
	first[0].NAV = decimal.NewFromInt(-1)

	again, err := repo.GetHistory(ctx, "Portfolio C")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if !again[0].NAV.Equal(original) {
		t.Fatalf("cache corrupted by caller: NAV %s, want %s", again[0].NAV, original)
	}
}

func TestGetHistoryPerPortfolio(t *testing.T) {
	collector := &countingCollector{}
	repo := NewHistoryRepository(domain.NewHistoryGenerator(), collector)
	ctx := context.Background()

	a, err := repo.GetHistory(ctx, "Portfolio A")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	b, err := repo.GetHistory(ctx, "Portfolio B")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}

	if samePoints(a, b) {
		t.Fatal("distinct portfolios share a history")
	}
	if _, misses := collector.counts(); misses != 2 {
		t.Fatalf("misses %d, want 2", misses)
	}
}
