package study

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// Cache는 지표 계산 결과를 이름별로 한 번만 계산해 보관하는 저장소입니다
type Cache struct {
	indicators map[string][]*dataset.Dataset // 지표 이름을 키로 하는 결과 맵
	mutex      sync.RWMutex                  // 동시성 제어
	logger     *zap.Logger
}

// NewCache는 새로운 지표 캐시를 생성합니다
func NewCache(logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		indicators: make(map[string][]*dataset.Dataset),
		logger:     logger,
	}
}

// CacheIndicator는 지표를 계산하고 이름으로 캐싱합니다.
// 계산 중에는 잠금을 잡지 않으므로 서로 다른 지표를 동시에 계산할 수 있습니다.
func (c *Cache) CacheIndicator(name string, ind Indicator, d *dataset.Dataset) error {
	c.logger.Debug("지표 계산 중", zap.String("name", name))
	results, err := ind.Calculate(d)
	if err != nil {
		return fmt.Errorf("지표 '%s' 계산 실패: %w", name, err)
	}

	c.mutex.Lock()
	c.indicators[name] = results
	c.mutex.Unlock()

	c.logger.Info("지표 계산 완료",
		zap.String("name", name),
		zap.Int("series", len(results)),
		zap.Int("length", d.Len()),
	)
	return nil
}

// CacheIndicators는 여러 지표를 병렬로 계산하여 캐싱합니다.
// 이미 캐시에 있거나 목록 안에서 중복된 이름은 건너뜁니다.
func (c *Cache) CacheIndicators(ctx context.Context, specs []Spec, d *dataset.Dataset) error {
	type job struct {
		name string
		ind  Indicator
	}

	seen := make(map[string]bool, len(specs))
	var jobs []job
	for _, spec := range specs {
		name := SpecName(spec)
		if seen[name] {
			continue
		}
		seen[name] = true

		if c.HasIndicator(name) {
			c.logger.Debug("이미 캐시에 있는 지표", zap.String("name", name))
			continue
		}

		ind, err := CreateIndicator(spec)
		if err != nil {
			return fmt.Errorf("지표 생성 실패 '%s': %w", name, err)
		}
		jobs = append(jobs, job{name: name, ind: ind})
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.CacheIndicator(j.name, j.ind, d)
		})
	}
	return g.Wait()
}

// GetIndicator는 지표 이름에 해당하는 결과 시계열들을 반환합니다
func (c *Cache) GetIndicator(name string) ([]*dataset.Dataset, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	results, exists := c.indicators[name]
	if !exists {
		return nil, fmt.Errorf("캐시에 '%s' 지표가 없습니다", name)
	}
	return results, nil
}

// GetSeries는 지표 결과 중 index번째 시계열을 반환합니다
func (c *Cache) GetSeries(name string, index int) (*dataset.Dataset, error) {
	results, err := c.GetIndicator(name)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(results) {
		return nil, fmt.Errorf("유효하지 않은 인덱스: %d", index)
	}
	return results[index], nil
}

// HasIndicator는 특정 지표가 캐시에 있는지 확인합니다
func (c *Cache) HasIndicator(name string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	_, exists := c.indicators[name]
	return exists
}

// GetIndicators는 정렬된 지표명 목록을 반환합니다
func (c *Cache) GetIndicators() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	names := make([]string, 0, len(c.indicators))
	for name := range c.indicators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
