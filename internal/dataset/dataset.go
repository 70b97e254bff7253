// Package dataset은 인덱스로 접근하는 OHLCV 시계열과 그 산술 결합 연산을 제공합니다.
//
// 모든 연산은 인덱스 기준으로 정렬된 두 시계열을 가정합니다. 길이와 봉 간격이
// 같다는 것은 호출자가 보장해야 하며 시간 값으로 맞추어 조인하지 않습니다.
package dataset

// Dataset은 DataItem Slot의 순서 있는 목록입니다.
// nil *Dataset은 "결과 없음"을 뜻하며 모든 메서드는 nil에서도 안전하게 동작합니다.
// 변환 함수나 수집 어댑터가 만드는 동안에만 변경하고, 소비자에게 넘긴 뒤에는
// 읽기 전용으로 취급합니다.
type Dataset struct {
	slots []Slot
}

// Empty는 모든 칸이 비어 있는 길이 count의 Dataset을 생성합니다
func Empty(count int) *Dataset {
	if count < 0 {
		count = 0
	}
	return &Dataset{slots: make([]Slot, count)}
}

// New는 모든 칸이 채워진 Dataset을 생성합니다
func New(items []DataItem) *Dataset {
	slots := make([]Slot, len(items))
	for i, item := range items {
		slots[i] = Present(item)
	}
	return &Dataset{slots: slots}
}

// FromSlots는 Slot 목록을 복사하여 Dataset을 생성합니다
func FromSlots(slots []Slot) *Dataset {
	cp := make([]Slot, len(slots))
	copy(cp, slots)
	return &Dataset{slots: cp}
}

// Len은 칸의 개수를 반환합니다
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.slots)
}

func (d *Dataset) inRange(i int) bool {
	return d != nil && i >= 0 && i < len(d.slots)
}

// Slot은 i번째 칸을 반환합니다. 범위를 벗어나면 빈 칸입니다.
func (d *Dataset) Slot(i int) Slot {
	if !d.inRange(i) {
		return Absent()
	}
	return d.slots[i]
}

// At은 i번째 값과 존재 여부를 반환합니다
func (d *Dataset) At(i int) (DataItem, bool) {
	return d.Slot(i).Get()
}

// IsPresent는 i번째 칸에 값이 있는지 확인합니다
func (d *Dataset) IsPresent(i int) bool {
	return d.Slot(i).IsPresent()
}

// Set은 i번째 칸에 값을 저장합니다. 범위를 벗어나면 무시합니다.
func (d *Dataset) Set(i int, item DataItem) {
	if !d.inRange(i) {
		return
	}
	d.slots[i] = Present(item)
}

// Clear는 i번째 칸을 비웁니다
func (d *Dataset) Clear(i int) {
	if !d.inRange(i) {
		return
	}
	d.slots[i] = Absent()
}

// LeadingAbsent는 앞쪽에 연속된 빈 칸의 개수를 반환합니다
func (d *Dataset) LeadingAbsent() int {
	n := d.Len()
	for j := 0; j < n; j++ {
		if d.slots[j].present {
			return j
		}
	}
	return n
}

// Items는 값이 있는 칸만 순서대로 반환합니다
func (d *Dataset) Items() []DataItem {
	items := make([]DataItem, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		if item, ok := d.slots[i].Get(); ok {
			items = append(items, item)
		}
	}
	return items
}

// Clone은 구조적 복사본을 반환합니다
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	return FromSlots(d.slots)
}

// SubDataset은 [begin, end) 구간의 복사본을 반환합니다.
// 범위는 경계 안으로 잘라내며, 잘라낸 뒤 begin > end이면 nil을 반환합니다.
func (d *Dataset) SubDataset(begin, end int) *Dataset {
	if d == nil {
		return nil
	}
	n := d.Len()
	begin = clamp(begin, 0, n)
	end = clamp(end, 0, n)
	if begin > end {
		return nil
	}
	return FromSlots(d.slots[begin:end])
}

// Equal은 두 Dataset이 칸 단위로 같은지 비교합니다.
// nil(결과 없음)은 nil하고만 같습니다. 길이 0인 Dataset과도 다릅니다.
func (d *Dataset) Equal(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Len() != other.Len() {
		return false
	}
	for i := range d.slots {
		if d.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ---------- 인덱스별 접근자 ----------
// 범위를 벗어나거나 빈 칸이면 0을 반환합니다. 인덱스 유효성은 호출자 책임입니다.

func (d *Dataset) Time(i int) int64 {
	item, _ := d.At(i)
	return item.Time
}

func (d *Dataset) Open(i int) float64 {
	item, _ := d.At(i)
	return item.Open
}

func (d *Dataset) High(i int) float64 {
	item, _ := d.At(i)
	return item.High
}

func (d *Dataset) Low(i int) float64 {
	item, _ := d.At(i)
	return item.Low
}

func (d *Dataset) Close(i int) float64 {
	item, _ := d.At(i)
	return item.Close
}

func (d *Dataset) Volume(i int) float64 {
	item, _ := d.At(i)
	return item.Volume
}

// Price는 i번째 봉의 PriceType 가격을 반환합니다
func (d *Dataset) Price(i int, p PriceType) float64 {
	item, ok := d.At(i)
	if !ok {
		return 0
	}
	return item.Price(p)
}

// update는 i번째 칸을 수정합니다. 빈 칸이면 0으로 채운 값을 만든 뒤 수정합니다.
func (d *Dataset) update(i int, fn func(*DataItem)) {
	if !d.inRange(i) {
		return
	}
	item := d.slots[i].item
	fn(&item)
	d.slots[i] = Present(item)
}

func (d *Dataset) SetTime(i int, t int64) {
	d.update(i, func(item *DataItem) { item.Time = t })
}

func (d *Dataset) SetOpen(i int, v float64) {
	d.update(i, func(item *DataItem) { item.Open = v })
}

func (d *Dataset) SetHigh(i int, v float64) {
	d.update(i, func(item *DataItem) { item.High = v })
}

func (d *Dataset) SetLow(i int, v float64) {
	d.update(i, func(item *DataItem) { item.Low = v })
}

func (d *Dataset) SetClose(i int, v float64) {
	d.update(i, func(item *DataItem) { item.Close = v })
}

func (d *Dataset) SetVolume(i int, v float64) {
	d.update(i, func(item *DataItem) { item.Volume = v })
}
