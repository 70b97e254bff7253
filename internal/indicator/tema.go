package indicator

import (
	"fmt"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// TEMA는 삼중 지수이동평균 3*EMA1 - 3*EMA2 + EMA3 을 계산합니다.
// 세 EMA가 모두 유효한 인덱스에서만 값을 내며, 그중 하나라도 종가가 정확히 0이면
// 모든 필드를 0으로 둔 봉을 냅니다.
func TEMA(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}

	ema1, err := EMA(d, period)
	if err != nil {
		return nil, fmt.Errorf("TEMA 1차 EMA 계산 실패: %w", err)
	}
	ema2, err := EMA(ema1, period)
	if err != nil {
		return nil, fmt.Errorf("TEMA 2차 EMA 계산 실패: %w", err)
	}
	ema3, err := EMA(ema2, period)
	if err != nil {
		return nil, fmt.Errorf("TEMA 3차 EMA 계산 실패: %w", err)
	}

	n := d.Len()
	out := dataset.Empty(n)
	for i := 0; i < n; i++ {
		e1, ok1 := ema1.At(i)
		e2, ok2 := ema2.At(i)
		e3, ok3 := ema3.At(i)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		if e1.Close == 0 || e2.Close == 0 || e3.Close == 0 {
			out.Set(i, dataset.DataItem{Time: d.Time(i)})
			continue
		}
		out.Set(i, dataset.DataItem{
			Time:   d.Time(i),
			Open:   3*e1.Open - 3*e2.Open + e3.Open,
			High:   3*e1.High - 3*e2.High + e3.High,
			Low:    3*e1.Low - 3*e2.Low + e3.Low,
			Close:  3*e1.Close - 3*e2.Close + e3.Close,
			Volume: 3*e1.Volume - 3*e2.Volume + e3.Volume,
		})
	}
	return out, nil
}
