package indicator

import (
	"fmt"
	"math"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// HMA는 Hull 이동평균을 계산합니다.
// HMA = WMA(2*WMA(d, period/2) - WMA(d, period), floor(sqrt(period)))
func HMA(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 2); err != nil {
		return nil, err
	}

	half, err := WMA(d, period/2)
	if err != nil {
		return nil, fmt.Errorf("HMA 단기 WMA 계산 실패: %w", err)
	}
	full, err := WMA(d, period)
	if err != nil {
		return nil, fmt.Errorf("HMA 장기 WMA 계산 실패: %w", err)
	}

	raw := dataset.Diff(dataset.Multiply(half, 2), full)
	return WMA(raw, int(math.Sqrt(float64(period))))
}
