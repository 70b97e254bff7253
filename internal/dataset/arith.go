package dataset

import "math"

// 산술 결합 연산은 모두 인덱스 기준으로 동작하며 입력을 변경하지 않습니다.
// 입력이 nil이면 nil을 반환합니다. 첫 번째 입력의 빈 칸은 결과에서도 빈 칸입니다.

// Const는 각 봉을 (시간, value, value, value, value, value)로 바꾼 기준선을 만듭니다
func Const(d *Dataset, value float64) *Dataset {
	return mapItems(d, func(item DataItem) DataItem {
		return DataItem{Time: item.Time, Open: value, High: value, Low: value, Close: value, Volume: value}
	})
}

// Log는 모든 필드에 상용로그(log10)를 적용합니다
func Log(d *Dataset) *Dataset {
	return mapItems(d, func(item DataItem) DataItem {
		return DataItem{
			Time:   item.Time,
			Open:   math.Log10(item.Open),
			High:   math.Log10(item.High),
			Low:    math.Log10(item.Low),
			Close:  math.Log10(item.Close),
			Volume: math.Log10(item.Volume),
		}
	})
}

// Multiply는 모든 필드에 k를 곱합니다
func Multiply(d *Dataset, k float64) *Dataset {
	return mapItems(d, func(item DataItem) DataItem {
		return scaleItem(item, func(v float64) float64 { return v * k })
	})
}

// Div는 모든 필드를 k로 나눕니다
func Div(d *Dataset, k float64) *Dataset {
	return mapItems(d, func(item DataItem) DataItem {
		return scaleItem(item, func(v float64) float64 { return v / k })
	})
}

// Sum은 두 Dataset을 인덱스별로 더합니다. 반복 길이는 d1이 결정하며,
// 어느 한쪽이라도 빈 칸이거나 d2의 범위를 벗어나면 빈 칸입니다.
func Sum(d1, d2 *Dataset) *Dataset {
	return zipItems(d1, d2, func(a, b float64) float64 { return a + b })
}

// Diff는 d1에서 d2를 인덱스별로 뺍니다. 빈 칸 처리 규칙은 Sum과 같습니다.
func Diff(d1, d2 *Dataset) *Dataset {
	return zipItems(d1, d2, func(a, b float64) float64 { return a - b })
}

func mapItems(d *Dataset, fn func(DataItem) DataItem) *Dataset {
	if d == nil {
		return nil
	}
	out := Empty(d.Len())
	for i, slot := range d.slots {
		if item, ok := slot.Get(); ok {
			out.slots[i] = Present(fn(item))
		}
	}
	return out
}

func zipItems(d1, d2 *Dataset, op func(a, b float64) float64) *Dataset {
	if d1 == nil || d2 == nil {
		return nil
	}
	out := Empty(d1.Len())
	for i, slot := range d1.slots {
		a, ok := slot.Get()
		if !ok {
			continue
		}
		b, ok := d2.At(i)
		if !ok {
			continue
		}
		out.slots[i] = Present(DataItem{
			Time:   a.Time,
			Open:   op(a.Open, b.Open),
			High:   op(a.High, b.High),
			Low:    op(a.Low, b.Low),
			Close:  op(a.Close, b.Close),
			Volume: op(a.Volume, b.Volume),
		})
	}
	return out
}

func scaleItem(item DataItem, fn func(float64) float64) DataItem {
	return DataItem{
		Time:   item.Time,
		Open:   fn(item.Open),
		High:   fn(item.High),
		Low:    fn(item.Low),
		Close:  fn(item.Close),
		Volume: fn(item.Volume),
	}
}
