package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataItem_Price(t *testing.T) {
	item := NewDataItem(1_700_000_000_000, 10, 14, 8, 12, 500)

	tests := []struct {
		name string
		pt   PriceType
		want float64
	}{
		{"시가", PriceOpen, 10},
		{"고가", PriceHigh, 14},
		{"저가", PriceLow, 8},
		{"종가", PriceClose, 12},
		{"거래량", PriceVolume, 500},
		{"대표가", PriceTypical, (14.0 + 8 + 12) / 3},
		{"중간가", PriceMedian, 11},
		{"가중가", PriceWeighted, (14.0 + 8 + 24) / 4},
		{"알 수 없는 유형", PriceType(99), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, item.Price(tt.pt), 1e-12)
		})
	}
}

func TestParsePriceType(t *testing.T) {
	for p, name := range priceTypeNames {
		got, err := ParsePriceType(" " + name + " ")
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.Equal(t, name, p.String())
	}

	_, err := ParsePriceType("vwap")
	assert.Error(t, err)
	assert.Equal(t, "unknown", PriceType(-1).String())
}

func TestDataItem_CompareAndEqual(t *testing.T) {
	a := NewDataItem(1000, 1, 2, 0.5, 1.5, 10)
	b := NewDataItem(2000, 1, 2, 0.5, 1.5, 10)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	c := a
	assert.True(t, a == c)
	c.Volume = 11
	assert.False(t, a == c)
}

func TestDataItem_UpdateClose(t *testing.T) {
	item := NewDataItem(0, 1, 2, 0, 1.5, 0)

	assert.False(t, item.UpdateClose(NewDataItem(0, 0, 0, 0, 1.5, 0)))
	assert.True(t, item.UpdateClose(NewDataItem(0, 0, 0, 0, 1.75, 0)))
	assert.Equal(t, 1.75, item.Close)

	item.Close = math.NaN()
	assert.False(t, item.UpdateClose(DataItem{Close: math.NaN()}), "NaN은 비트 단위로 같습니다")

	item.Close = 0
	assert.True(t, item.UpdateClose(DataItem{Close: math.Copysign(0, -1)}), "0과 -0은 다릅니다")
}

func TestDataItem_Timestamp(t *testing.T) {
	item := NewDataItem(1_704_067_200_000, 0, 0, 0, 0, 0)
	assert.Equal(t, "2024-01-01", item.Timestamp().UTC().Format("2006-01-02"))
}
