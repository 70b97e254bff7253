package study

import (
	"fmt"

	"github.com/assist-by/candlestudy/internal/axis"
	"github.com/assist-by/candlestudy/internal/dataset"
)

// AutoRange는 가격 데이터와 지정한 지표들의 값 범위를 합쳐 margin 비율만큼
// 넓힌 세로축 범위를 계산합니다. 값이 하나도 없는 시계열은 건너뜁니다.
func AutoRange(price *dataset.Dataset, cache *Cache, names []string, margin float64) (axis.Range, error) {
	r := axis.Empty()
	if len(price.Items()) > 0 {
		r = axis.ValueOf(price)
	}

	for _, name := range names {
		series, err := cache.GetIndicator(name)
		if err != nil {
			return axis.Range{}, err
		}
		for _, s := range series {
			if len(s.Items()) == 0 {
				continue
			}
			r = axis.CombineNotZero(r, axis.ValueOf(s))
		}
	}

	expanded, err := axis.Expand(r, margin, margin)
	if err != nil {
		return axis.Range{}, fmt.Errorf("축 범위 계산 실패: %w", err)
	}
	return expanded, nil
}
