package indicator

import (
	"fmt"
	"math"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// SAROption은 Parabolic SAR 계산에 필요한 옵션을 정의합니다
type SAROption struct {
	AccelerationInitial float64 // 초기 가속도
	AccelerationMax     float64 // 최대 가속도
}

// DefaultSAROption은 기본 SAR 옵션을 반환합니다
func DefaultSAROption() SAROption {
	return SAROption{
		AccelerationInitial: 0.02,
		AccelerationMax:     0.2,
	}
}

// ValidateSAROption은 SAR 옵션을 검증합니다
func ValidateSAROption(opt SAROption) error {
	if opt.AccelerationInitial <= 0 {
		return &ValidationError{
			Field: "AccelerationInitial",
			Err:   fmt.Errorf("초기 가속도는 0보다 커야 합니다: %f", opt.AccelerationInitial),
		}
	}
	if opt.AccelerationMax <= opt.AccelerationInitial {
		return &ValidationError{
			Field: "AccelerationMax",
			Err: fmt.Errorf("최대 가속도는 초기 가속도보다 커야 합니다: %f <= %f",
				opt.AccelerationMax, opt.AccelerationInitial),
		}
	}
	return nil
}

// SARResult는 Parabolic SAR 계산 결과입니다
type SARResult struct {
	SAR    *dataset.Dataset // SAR 값
	IsLong []bool           // 인덱스별 상승 추세 여부
}

// SAR은 Parabolic SAR 지표를 계산합니다.
// 첫 유효 봉부터 시작하며 유효 봉이 2개 미만이면 모두 빈 칸입니다.
func SAR(d *dataset.Dataset, opt SAROption) (*SARResult, error) {
	if d == nil {
		return nil, nil
	}
	if err := ValidateSAROption(opt); err != nil {
		return nil, err
	}

	n := d.Len()
	result := &SARResult{SAR: dataset.Empty(n), IsLong: make([]bool, n)}
	s := d.LeadingAbsent()
	if n-s < 2 {
		return result, nil
	}

	// 초기값 설정
	isLong := d.Close(s+1) > d.Close(s)
	af := opt.AccelerationInitial
	var sar, extremePoint float64
	if isLong {
		sar = d.Low(s)
		extremePoint = d.High(s + 1)
	} else {
		sar = d.High(s)
		extremePoint = d.Low(s + 1)
	}
	result.SAR.Set(s, lineItem(d.Time(s), sar))
	result.IsLong[s] = isLong

	for i := s + 1; i < n; i++ {
		sar = sar + af*(extremePoint-sar)

		if isLong {
			// SAR는 이전 두 봉의 저점보다 높을 수 없음
			if i > s+1 {
				sar = math.Min(sar, math.Min(d.Low(i-1), d.Low(i)))
			}
			if d.High(i) > extremePoint {
				extremePoint = d.High(i)
				af = math.Min(af+opt.AccelerationInitial, opt.AccelerationMax)
			}
			if d.Low(i) < sar {
				isLong = false
				sar = extremePoint
				extremePoint = d.Low(i)
				af = opt.AccelerationInitial
			}
		} else {
			// SAR는 이전 두 봉의 고점보다 낮을 수 없음
			if i > s+1 {
				sar = math.Max(sar, math.Max(d.High(i-1), d.High(i)))
			}
			if d.Low(i) < extremePoint {
				extremePoint = d.Low(i)
				af = math.Min(af+opt.AccelerationInitial, opt.AccelerationMax)
			}
			if d.High(i) > sar {
				isLong = true
				sar = extremePoint
				extremePoint = d.High(i)
				af = opt.AccelerationInitial
			}
		}

		result.SAR.Set(i, lineItem(d.Time(i), sar))
		result.IsLong[i] = isLong
	}

	return result, nil
}
