package dataset

// 컬럼 추출 메서드는 칸 인덱스와 1:1로 정렬된 배열을 반환합니다.
//
// 주의: 빈 칸은 0으로 채워집니다. 따라서 반환된 배열만으로는 "실제 0"과
// "아직 값 없음"을 구분할 수 없습니다. 차트 쪽 코드가 이 0 채우기에 의존하므로
// 동작을 바꾸지 않습니다. 구분이 필요하면 Slot 또는 At을 사용하세요.

// Times는 시간 컬럼을 반환합니다
func (d *Dataset) Times() []int64 {
	out := make([]int64, d.Len())
	for i := range out {
		out[i] = d.slots[i].item.Time
	}
	return out
}

func (d *Dataset) Opens() []float64 {
	return d.column(func(item DataItem) float64 { return item.Open })
}

func (d *Dataset) Highs() []float64 {
	return d.column(func(item DataItem) float64 { return item.High })
}

func (d *Dataset) Lows() []float64 {
	return d.column(func(item DataItem) float64 { return item.Low })
}

func (d *Dataset) Closes() []float64 {
	return d.column(func(item DataItem) float64 { return item.Close })
}

func (d *Dataset) Volumes() []float64 {
	return d.column(func(item DataItem) float64 { return item.Volume })
}

// Prices는 PriceType으로 선택한 가격 컬럼을 반환합니다
func (d *Dataset) Prices(p PriceType) []float64 {
	return d.column(func(item DataItem) float64 { return item.Price(p) })
}

func (d *Dataset) column(get func(DataItem) float64) []float64 {
	out := make([]float64, d.Len())
	for i := range out {
		if item, ok := d.slots[i].Get(); ok {
			out[i] = get(item)
		}
	}
	return out
}
