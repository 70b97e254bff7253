package indicator

import "github.com/assist-by/candlestudy/internal/dataset"

// RSI는 종가 기준 Relative Strength Index를 계산합니다.
// 첫 period개 변동의 평균으로 시작하고 이후 Wilder 방식으로 갱신합니다.
// 첫 값은 첫 유효 봉으로부터 period번째 인덱스에 놓입니다.
func RSI(d *dataset.Dataset, period int) (*dataset.Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, err
	}

	n := d.Len()
	out := dataset.Empty(n)
	j := d.LeadingAbsent()
	first := j + period
	if first >= n {
		return out, nil
	}
	closes := d.Closes()

	// ---------- 1. 첫 period 개의 변동 합산 (SMA) ----------
	sumGain, sumLoss := 0.0, 0.0
	for i := j + 1; i <= first; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			sumGain += delta
		} else {
			sumLoss += -delta
		}
	}
	p := float64(period)
	avgGain, avgLoss := sumGain/p, sumLoss/p
	out.Set(first, lineItem(d.Time(first), toRSI(avgGain, avgLoss)))

	// ---------- 2. 이후 구간 Wilder 방식 ----------
	for i := first + 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out.Set(i, lineItem(d.Time(i), toRSI(avgGain, avgLoss)))
	}
	return out, nil
}

func toRSI(avgGain, avgLoss float64) float64 {
	switch {
	case avgGain == 0 && avgLoss == 0:
		return 50 // 완전 횡보
	case avgLoss == 0:
		return 100
	default:
		rs := avgGain / avgLoss
		return 100 - 100/(1+rs)
	}
}
