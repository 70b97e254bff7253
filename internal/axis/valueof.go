package axis

import (
	"math"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// ValueOfItems는 봉 목록에서 최저 저가와 최고 고가를 찾아 Range로 반환합니다.
//
// 탐색 시작값은 low = math.MaxFloat64, high = 0 입니다. 고가가 모두 음수인
// 데이터(파생 지표 등)에서는 상한이 0으로 남습니다. 차트 자동 스케일이 이
// 동작에 맞춰져 있으므로 ±Inf 시작값으로 바꾸지 않습니다.
func ValueOfItems(items []dataset.DataItem) Range {
	low := math.MaxFloat64
	high := 0.0
	for _, item := range items {
		if item.Low < low {
			low = item.Low
		}
		if item.High > high {
			high = item.High
		}
	}
	return New(low, high)
}

// ValueOf는 Dataset의 값이 있는 칸만 탐색하여 Range를 반환합니다.
// 시작값 규칙은 ValueOfItems와 같습니다.
func ValueOf(d *dataset.Dataset) Range {
	return ValueOfItems(d.Items())
}
