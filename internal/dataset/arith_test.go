package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConst(t *testing.T) {
	d := New(generateTestItems(3))
	d.Clear(1)

	out := Const(d, 50)
	require.Equal(t, d.Len(), out.Len())
	item, ok := out.At(0)
	require.True(t, ok)
	assert.Equal(t, NewDataItem(0, 50, 50, 50, 50, 50), item)
	assert.False(t, out.IsPresent(1))
	assert.Equal(t, int64(120_000), out.Time(2))

	assert.Nil(t, Const(nil, 1))
}

func TestLog(t *testing.T) {
	d := New([]DataItem{NewDataItem(5, 10, 100, 1, 1000, 10000)})
	out := Log(d)

	item, ok := out.At(0)
	require.True(t, ok)
	assert.Equal(t, int64(5), item.Time)
	assert.InDelta(t, 1, item.Open, 1e-12)
	assert.InDelta(t, 2, item.High, 1e-12)
	assert.InDelta(t, 0, item.Low, 1e-12)
	assert.InDelta(t, 3, item.Close, 1e-12)
	assert.InDelta(t, 4, item.Volume, 1e-12)
}

func TestMultiplyAndDiv(t *testing.T) {
	d := New(generateTestItems(2))

	doubled := Multiply(d, 2)
	assert.Equal(t, 2*d.Close(1), doubled.Close(1))
	assert.Equal(t, 2*d.Volume(0), doubled.Volume(0))
	assert.Equal(t, d.Time(1), doubled.Time(1))

	halved := Div(d, 2)
	assert.Equal(t, d.High(0)/2, halved.High(0))

	assert.True(t, math.IsInf(Div(d, 0).Close(0), 1))
	assert.Equal(t, 101.0, d.Close(0), "입력은 변경되지 않아야 합니다")
}

func TestSumAndDiff(t *testing.T) {
	d1 := New(generateTestItems(4))
	d2 := Const(d1, 1)
	d2.Clear(2)

	sum := Sum(d1, d2)
	diff := Diff(d1, d2)
	require.Equal(t, 4, sum.Len())

	assert.Equal(t, d1.Close(0)+1, sum.Close(0))
	assert.Equal(t, d1.Low(1)-1, diff.Low(1))
	assert.Equal(t, d1.Time(3), diff.Time(3))
	assert.False(t, sum.IsPresent(2), "d2가 빈 칸이면 결과도 빈 칸")

	t.Run("d1 길이가 반복을 결정", func(t *testing.T) {
		short := d2.SubDataset(0, 2)
		out := Sum(d1, short)
		require.Equal(t, 4, out.Len())
		assert.True(t, out.IsPresent(1))
		assert.False(t, out.IsPresent(3))
	})

	t.Run("nil 입력은 nil", func(t *testing.T) {
		assert.Nil(t, Sum(nil, d1))
		assert.Nil(t, Diff(d1, nil))
	})
}
