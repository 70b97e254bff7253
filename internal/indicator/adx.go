package indicator

import (
	"fmt"
	"math"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// ADXResult는 ADX 계산 결과의 세 시계열입니다.
// 각 봉은 시가/고가/저가/종가에 같은 값을 담습니다.
type ADXResult struct {
	PlusDI  *dataset.Dataset // +DI
	MinusDI *dataset.Dataset // -DI
	ADX     *dataset.Dataset // DX의 EMA
}

// Series는 결과를 [+DI, -DI, ADX] 순서로 반환합니다
func (r *ADXResult) Series() []*dataset.Dataset {
	if r == nil {
		return nil
	}
	return []*dataset.Dataset{r.PlusDI, r.MinusDI, r.ADX}
}

// ADX는 Average Directional Index 지표를 계산합니다.
//
// 입력 앞쪽의 빈 칸 개수를 j라 할 때 모든 단계는 j 이후의 봉만 사용합니다.
//
//  1. i >= j+1 에서 TR = max(고가-전종가, |고가-전종가|, |저가-전종가|)
//  2. 방향성 이동(DM)을 분류합니다. 진 쪽은 해당 인덱스에서 빈 칸입니다.
//  3. TR, +DM, -DM을 EMA(period)로 평활합니다. 세 시계열은 TR의 첫 인덱스에서
//     같은 워밍업을 갖습니다.
//  4. j+period 인덱스부터 ±DI = 100 * 평활DM / 평활TR, DX = 100*|+DI - -DI| / (+DI + -DI)
//  5. ADX = EMA(DX, period)
func ADX(d *dataset.Dataset, period int) (*ADXResult, error) {
	if d == nil {
		return nil, nil
	}
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, err
	}

	n := d.Len()
	tr := dataset.Empty(n)
	plusDM := dataset.Empty(n)
	minusDM := dataset.Empty(n)
	j := d.LeadingAbsent()

	// ---------- 1~2. TR과 방향성 이동 ----------
	for i := j + 1; i < n; i++ {
		t := d.Time(i)
		high, low := d.High(i), d.Low(i)
		prevHigh, prevLow, prevClose := d.High(i-1), d.Low(i-1), d.Close(i-1)

		trueRange := math.Max(high-prevClose, math.Max(math.Abs(high-prevClose), math.Abs(low-prevClose)))
		tr.Set(i, lineItem(t, trueRange))

		up := high - prevHigh
		down := prevLow - low
		switch {
		case high <= prevHigh && low < prevLow:
			minusDM.Set(i, lineItem(t, down))
		case high > prevHigh && low >= prevLow:
			plusDM.Set(i, lineItem(t, up))
		case math.Abs(up) > math.Abs(down):
			// 안쪽 봉이면 두 이동이 모두 음수이므로 0으로 자릅니다
			plusDM.Set(i, lineItem(t, math.Max(up, 0)))
		default:
			minusDM.Set(i, lineItem(t, math.Max(down, 0)))
		}
	}

	// ---------- 3. 평활 ----------
	start := j + 1
	smoothedTR := ema(tr, period, start, d)
	smoothedPlus := ema(plusDM, period, start, d)
	smoothedMinus := ema(minusDM, period, start, d)

	// ---------- 4. DI, DX ----------
	plusDI := dataset.Empty(n)
	minusDI := dataset.Empty(n)
	dx := dataset.Empty(n)
	for i := j + period; i < n; i++ {
		trItem, ok := smoothedTR.At(i)
		if !ok {
			continue
		}
		t := d.Time(i)
		plus, minus := 0.0, 0.0
		if trItem.Close != 0 {
			plus = 100 * smoothedPlus.Close(i) / trItem.Close
			minus = 100 * smoothedMinus.Close(i) / trItem.Close
		}
		plusDI.Set(i, lineItem(t, plus))
		minusDI.Set(i, lineItem(t, minus))

		if sum := plus + minus; sum != 0 {
			dx.Set(i, lineItem(t, 100*math.Abs(plus-minus)/sum))
		}
	}

	// ---------- 5. ADX ----------
	adx, err := EMA(dx, period)
	if err != nil {
		return nil, fmt.Errorf("ADX 평활 실패: %w", err)
	}

	return &ADXResult{PlusDI: plusDI, MinusDI: minusDI, ADX: adx}, nil
}
