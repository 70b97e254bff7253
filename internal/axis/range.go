// Package axis는 차트 축 스케일링에 쓰는 불변 수치 구간 Range를 제공합니다.
package axis

import (
	"errors"
	"fmt"
	"math"
)

// Error 타입들은 잘못된 Range 연산 인자를 정의합니다
var (
	ErrEmptyRange     = errors.New("빈 Range에는 적용할 수 없습니다")
	ErrNegativeFactor = errors.New("배율은 음수일 수 없습니다")
)

// Range는 닫힌 구간 [lower, upper]입니다.
// 모든 연산은 새 Range를 반환하며 수신자를 변경하지 않습니다.
type Range struct {
	lower float64
	upper float64
}

// New는 두 값의 대소를 정리하여 Range를 생성합니다. 두 값이 같으면 한 점 구간입니다.
func New(lower, upper float64) Range {
	return Range{lower: math.Min(lower, upper), upper: math.Max(lower, upper)}
}

// Empty는 값이 없음을 뜻하는 뒤집힌 구간 (+Inf, -Inf)을 반환합니다.
// 어떤 Range와 Combine해도 그 Range가 그대로 나옵니다.
func Empty() Range {
	return Range{lower: math.Inf(1), upper: math.Inf(-1)}
}

// IsEmpty는 Empty 구간인지(하한이 상한보다 큰지) 확인합니다
func (r Range) IsEmpty() bool {
	return r.lower > r.upper
}

func (r Range) Lower() float64 { return r.lower }

func (r Range) Upper() float64 { return r.upper }

// Length는 구간 길이를 반환합니다. 상한이 하한 이하이면 0입니다.
func (r Range) Length() float64 {
	if r.upper <= r.lower {
		return 0
	}
	return r.upper - r.lower
}

// Central은 구간의 중앙값을 반환합니다
func (r Range) Central() float64 {
	return r.lower/2 + r.upper/2
}

// Contains는 value가 구간 안에 있는지 확인합니다
func (r Range) Contains(value float64) bool {
	return value >= r.lower && value <= r.upper
}

// Intersects는 [lo, hi]가 이 구간과 겹치는지 확인합니다
func (r Range) Intersects(lo, hi float64) bool {
	if lo <= r.lower {
		return hi > r.lower
	}
	return lo < r.upper && hi >= lo
}

// Constrain은 value를 구간 안으로 잘라 반환합니다
func (r Range) Constrain(value float64) float64 {
	if r.Contains(value) {
		return value
	}
	if value > r.upper {
		return r.upper
	}
	if value < r.lower {
		return r.lower
	}
	return value
}

func (r Range) String() string {
	return fmt.Sprintf("Range[%g,%g]", r.lower, r.upper)
}

// Combine은 두 구간을 모두 포함하는 최소 구간을 반환합니다.
// 한쪽이 Empty이면 다른 쪽을 그대로 반환합니다.
func Combine(r1, r2 Range) Range {
	if r1.IsEmpty() {
		return r2
	}
	if r2.IsEmpty() {
		return r1
	}
	return New(math.Min(r1.lower, r2.lower), math.Max(r1.upper, r2.upper))
}

// CombineNotZero는 가격 구간 r1에 지표 구간 r2를 합칩니다.
// r2의 하한이 양수일 때만 하한을 함께 합치고, 그렇지 않으면 r1의 하한을
// 유지한 채 상한만 넓힙니다. 0에 붙어 있는 지표가 가격 축의 하한을
// 끌어내리지 않게 하기 위한 비대칭 규칙입니다.
func CombineNotZero(r1, r2 Range) Range {
	if r1.IsEmpty() {
		return r2
	}
	if r2.IsEmpty() {
		return r1
	}
	if r2.lower > 0 {
		return New(math.Min(r1.lower, r2.lower), math.Max(r1.upper, r2.upper))
	}
	return New(r1.lower, math.Max(r1.upper, r2.upper))
}

// ExpandToInclude는 value가 포함되도록 구간을 최소한으로 넓힙니다.
// r이 Empty이면 [value, value]를 반환합니다.
func ExpandToInclude(r Range, value float64) Range {
	if r.IsEmpty() {
		return New(value, value)
	}
	if value < r.lower {
		return New(value, r.upper)
	}
	if value > r.upper {
		return New(r.lower, value)
	}
	return r
}

// Expand는 양쪽을 길이 대비 비율만큼 넓힙니다.
// 음수 비율로 구간이 뒤집히면 양 끝을 중앙값으로 모읍니다.
func Expand(r Range, lowerMargin, upperMargin float64) (Range, error) {
	if r.IsEmpty() {
		return Range{}, fmt.Errorf("expand: %w", ErrEmptyRange)
	}
	length := r.Length()
	lower := r.lower - length*lowerMargin
	upper := r.upper + length*upperMargin
	if lower > upper {
		lower = lower/2 + upper/2
		upper = lower
	}
	return Range{lower: lower, upper: upper}, nil
}

// Shift는 구간을 delta만큼 이동합니다.
// allowZeroCrossing이 false이면 양수 경계는 0 아래로, 음수 경계는 0 위로
// 넘어가지 않게 잘라냅니다. 정확히 0인 경계는 제한 없이 이동합니다.
func Shift(r Range, delta float64, allowZeroCrossing bool) (Range, error) {
	if r.IsEmpty() {
		return Range{}, fmt.Errorf("shift: %w", ErrEmptyRange)
	}
	if allowZeroCrossing {
		return Range{lower: r.lower + delta, upper: r.upper + delta}, nil
	}
	return Range{
		lower: shiftWithNoZeroCrossing(r.lower, delta),
		upper: shiftWithNoZeroCrossing(r.upper, delta),
	}, nil
}

func shiftWithNoZeroCrossing(value, delta float64) float64 {
	switch {
	case value > 0:
		return math.Max(value+delta, 0)
	case value < 0:
		return math.Min(value+delta, 0)
	default:
		return value + delta
	}
}

// Scale은 양 끝에 factor를 곱합니다. factor가 음수이면 에러입니다.
func Scale(r Range, factor float64) (Range, error) {
	if r.IsEmpty() {
		return Range{}, fmt.Errorf("scale: %w", ErrEmptyRange)
	}
	if factor < 0 {
		return Range{}, fmt.Errorf("scale(%g): %w", factor, ErrNegativeFactor)
	}
	return New(r.lower*factor, r.upper*factor), nil
}
