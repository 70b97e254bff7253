package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 테스트용 가격 데이터 생성
func generateTestItems(n int) []DataItem {
	items := make([]DataItem, n)
	for i := range items {
		base := 100 + float64(i)
		items[i] = NewDataItem(int64(i)*60_000, base, base+2, base-1, base+1, 1000+float64(i))
	}
	return items
}

func TestEmpty(t *testing.T) {
	d := Empty(5)
	require.Equal(t, 5, d.Len())
	for i := 0; i < d.Len(); i++ {
		assert.False(t, d.IsPresent(i))
	}
	assert.Equal(t, 5, d.LeadingAbsent())
	assert.Equal(t, 0, Empty(-3).Len())
}

func TestDataset_NilIsSafe(t *testing.T) {
	var d *Dataset

	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0.0, d.Close(0))
	assert.Empty(t, d.Closes())
	assert.Empty(t, d.Times())
	assert.Nil(t, d.Clone())
	assert.Nil(t, d.SubDataset(0, 0).Clone())
	assert.True(t, d.Equal(nil))
	assert.False(t, d.Equal(Empty(0)))
	assert.False(t, Empty(0).Equal(d), "nil은 길이 0인 Dataset과 다름")
	assert.True(t, Empty(0).Equal(Empty(0)))
	d.SetClose(0, 1) // 패닉이 없어야 합니다
}

func TestDataset_OutOfRangeAccess(t *testing.T) {
	d := New(generateTestItems(3))

	_, ok := d.At(-1)
	assert.False(t, ok)
	_, ok = d.At(3)
	assert.False(t, ok)
	assert.Equal(t, int64(0), d.Time(10))
	assert.Equal(t, 0.0, d.High(-5))
	assert.Equal(t, 0.0, d.Price(7, PriceTypical))

	d.Set(3, NewDataItem(1, 1, 1, 1, 1, 1))
	d.SetOpen(-1, 5)
	assert.Equal(t, 3, d.Len())
}

func TestDataset_Setters(t *testing.T) {
	d := Empty(2)

	d.SetTime(0, 42)
	d.SetOpen(0, 1)
	d.SetHigh(0, 3)
	d.SetLow(0, 0.5)
	d.SetClose(0, 2)
	d.SetVolume(0, 7)

	item, ok := d.At(0)
	require.True(t, ok, "빈 칸에 필드를 설정하면 값이 생겨야 합니다")
	assert.Equal(t, NewDataItem(42, 1, 3, 0.5, 2, 7), item)
	assert.False(t, d.IsPresent(1))

	d.Clear(0)
	assert.False(t, d.IsPresent(0))
	assert.Equal(t, 2, d.LeadingAbsent())
}

func TestDataset_ColumnsZeroFillAbsent(t *testing.T) {
	d := New(generateTestItems(4))
	d.Clear(1)

	assert.Equal(t, []float64{101, 0, 103, 104}, d.Closes())
	assert.Equal(t, []float64{100, 0, 102, 103}, d.Opens())
	assert.Equal(t, []float64{102, 0, 104, 105}, d.Highs())
	assert.Equal(t, []float64{99, 0, 101, 102}, d.Lows())
	assert.Equal(t, []float64{1000, 0, 1002, 1003}, d.Volumes())
	assert.Equal(t, []int64{0, 0, 120_000, 180_000}, d.Times())

	median := d.Prices(PriceMedian)
	assert.Equal(t, 0.0, median[1])
	assert.InDelta(t, 100.5, median[0], 1e-12)
}

func TestDataset_SubDataset(t *testing.T) {
	d := New(generateTestItems(6))

	t.Run("전체 구간은 원본과 같음", func(t *testing.T) {
		sub := d.SubDataset(0, d.Len())
		assert.True(t, sub.Equal(d))

		sub.SetClose(0, -1)
		assert.NotEqual(t, -1.0, d.Close(0), "복사본이어야 합니다")
	})

	t.Run("부분 구간", func(t *testing.T) {
		sub := d.SubDataset(2, 4)
		require.Equal(t, 2, sub.Len())
		assert.Equal(t, d.Close(2), sub.Close(0))
		assert.Equal(t, d.Close(3), sub.Close(1))
	})

	t.Run("경계 밖 범위는 잘라냄", func(t *testing.T) {
		assert.Equal(t, 6, d.SubDataset(-10, 100).Len())
		assert.Equal(t, 0, d.SubDataset(6, 100).Len())
	})

	t.Run("begin > end 이면 nil", func(t *testing.T) {
		assert.Nil(t, d.SubDataset(4, 2))
	})
}

func TestDataset_ItemsAndLeadingAbsent(t *testing.T) {
	d := New(generateTestItems(5))
	d.Clear(0)
	d.Clear(1)
	d.Clear(3)

	assert.Equal(t, 2, d.LeadingAbsent())
	items := d.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(120_000), items[0].Time)
	assert.Equal(t, int64(240_000), items[1].Time)
}

func TestFromSlots_Copies(t *testing.T) {
	slots := []Slot{Absent(), Present(NewDataItem(1, 1, 1, 1, 1, 1))}
	d := FromSlots(slots)
	slots[1] = Absent()

	assert.True(t, d.IsPresent(1))
	item, ok := d.Slot(1).Get()
	require.True(t, ok)
	assert.Equal(t, int64(1), item.Time)
}
