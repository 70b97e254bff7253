package dataset

// Slot은 Dataset의 한 칸입니다. 값이 있거나(Present) 비어 있습니다(Absent).
// 이동평균의 워밍업 구간처럼 값이 정의되지 않는 인덱스를 명시적으로 표현합니다.
type Slot struct {
	item    DataItem
	present bool
}

// Present는 값을 가진 Slot을 생성합니다
func Present(item DataItem) Slot {
	return Slot{item: item, present: true}
}

// Absent는 빈 Slot을 생성합니다
func Absent() Slot {
	return Slot{}
}

// Get은 Slot의 값과 존재 여부를 반환합니다
func (s Slot) Get() (DataItem, bool) {
	return s.item, s.present
}

// IsPresent는 값이 있는지 확인합니다
func (s Slot) IsPresent() bool {
	return s.present
}
