package indicator

import "github.com/assist-by/candlestudy/internal/dataset"

// EMA는 지수이동평균을 계산합니다.
// 첫 값은 처음 유효한 period개 봉의 단순평균이고, 이후에는
// EMA = 이전 EMA + (현재값 - 이전 EMA) × 2/(period+1) 로 갱신합니다.
func EMA(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return ema(d, period, d.LeadingAbsent(), d), nil
}

// EMAWilder는 Wilder 평활을 계산합니다. 기간을 2*period-1로 바꾼 EMA와 같습니다.
func EMAWilder(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return EMA(d, 2*period-1)
}

// ema는 start 인덱스부터 시드를 잡아 src를 평활합니다. 시간 값은 clock에서 가져옵니다.
func ema(src *dataset.Dataset, period, start int, clock *dataset.Dataset) *dataset.Dataset {
	n := src.Len()
	out := dataset.Empty(n)
	seed := start + period - 1
	if seed >= n {
		return out
	}

	rows := rowsOf(src)
	var value ohlcv
	for k := start; k <= seed; k++ {
		value = value.add(rows[k])
	}
	value = value.scale(1 / float64(period))
	out.Set(seed, toItem(clock.Time(seed), value))

	multiplier := 2.0 / float64(period+1)
	for i := seed + 1; i < n; i++ {
		for f := range value {
			value[f] = (rows[i][f]-value[f])*multiplier + value[f]
		}
		out.Set(i, toItem(clock.Time(i), value))
	}
	return out
}
