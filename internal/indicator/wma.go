package indicator

import "github.com/assist-by/candlestudy/internal/dataset"

// WMA는 선형 가중이동평균을 계산합니다.
// 인덱스 i의 값은 i-period..i-1 구간의 원시 값에 오래된 순으로 1..period의
// 가중치(행 k의 가중치 period-i+k+1)를 주고 period*(period+1)/2로 나눈 값입니다.
// 따라서 첫 유효 입력 이후 period개 봉이 워밍업 구간입니다.
func WMA(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, err
	}

	n := d.Len()
	out := dataset.Empty(n)
	rows := rowsOf(d)
	denominator := float64(period*(period+1)) / 2

	for i := d.LeadingAbsent() + period; i < n; i++ {
		var sum ohlcv
		for k := i - period; k < i; k++ {
			sum = sum.add(rows[k].scale(float64(period - i + k + 1)))
		}
		out.Set(i, toItem(d.Time(i), sum.scale(1/denominator)))
	}
	return out, nil
}
