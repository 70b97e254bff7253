// Package indicator는 Dataset을 입력받아 같은 길이의 새 Dataset을 반환하는
// 기술적 지표 변환 함수들을 제공합니다.
//
// 모든 변환은 입력을 변경하지 않으며, 값을 정의할 수 없는 앞쪽 워밍업 구간은
// 빈 칸(Absent)으로 채웁니다. 입력이 nil이면 (nil, nil)을 반환하므로 지표를
// 이어 붙일 때 매 단계 nil 검사를 하지 않아도 됩니다.
package indicator

import (
	"fmt"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// ValidationError는 입력값 검증 에러를 정의합니다
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("유효하지 않은 %s: %v", e.Field, e.Err)
}

// Unwrap은 내부 에러를 반환합니다 (errors.Is/As 지원을 위함)
func (e ValidationError) Unwrap() error {
	return e.Err
}

func validatePeriod(field string, period, min int) error {
	if period < min {
		return &ValidationError{
			Field: field,
			Err:   fmt.Errorf("기간은 %d 이상이어야 합니다: %d", min, period),
		}
	}
	return nil
}

// ohlcv는 한 봉의 다섯 가격 필드(시가, 고가, 저가, 종가, 거래량)를 벡터로 다룹니다
type ohlcv [5]float64

func (v ohlcv) add(o ohlcv) ohlcv {
	for f := range v {
		v[f] += o[f]
	}
	return v
}

func (v ohlcv) scale(k float64) ohlcv {
	for f := range v {
		v[f] *= k
	}
	return v
}

// rowsOf는 컬럼 추출과 같은 규칙(빈 칸은 0)으로 원시 값을 꺼냅니다
func rowsOf(d *dataset.Dataset) []ohlcv {
	rows := make([]ohlcv, d.Len())
	for i := range rows {
		rows[i] = ohlcv{d.Open(i), d.High(i), d.Low(i), d.Close(i), d.Volume(i)}
	}
	return rows
}

func toItem(t int64, v ohlcv) dataset.DataItem {
	return dataset.NewDataItem(t, v[0], v[1], v[2], v[3], v[4])
}

// lineItem은 단일 값 지표용 봉을 만듭니다. 시가/고가/저가/종가가 모두 value이고 거래량은 0입니다.
func lineItem(t int64, value float64) dataset.DataItem {
	return dataset.NewDataItem(t, value, value, value, value, 0)
}
