package indicator

import "github.com/assist-by/candlestudy/internal/dataset"

// SMA는 단순이동평균을 계산합니다.
// 입력 앞쪽의 빈 칸 개수를 j라 할 때 인덱스 period-1+j 부터 직전 period개
// 원시 값의 평균을 각 필드에 저장합니다.
func SMA(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, err
	}

	n := d.Len()
	out := dataset.Empty(n)
	rows := rowsOf(d)
	j := d.LeadingAbsent()

	for i := period - 1 + j; i < n; i++ {
		var sum ohlcv
		for k := i - period + 1; k <= i; k++ {
			sum = sum.add(rows[k])
		}
		out.Set(i, toItem(d.Time(i), sum.scale(1/float64(period))))
	}
	return out, nil
}
