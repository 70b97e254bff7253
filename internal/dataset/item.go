package dataset

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PriceType은 DataItem에서 어떤 가격을 꺼낼지 선택합니다
type PriceType int

const (
	PriceOpen PriceType = iota
	PriceHigh
	PriceLow
	PriceClose
	PriceVolume
	PriceTypical  // (고가+저가+종가)/3
	PriceMedian   // (고가+저가)/2
	PriceWeighted // (고가+저가+2*종가)/4
)

var priceTypeNames = map[PriceType]string{
	PriceOpen:     "open",
	PriceHigh:     "high",
	PriceLow:      "low",
	PriceClose:    "close",
	PriceVolume:   "volume",
	PriceTypical:  "typical",
	PriceMedian:   "median",
	PriceWeighted: "weighted",
}

// String은 PriceType의 문자열 표현을 반환합니다
func (p PriceType) String() string {
	if name, ok := priceTypeNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePriceType은 설정 문자열을 PriceType으로 변환합니다
func ParsePriceType(s string) (PriceType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for p, name := range priceTypeNames {
		if name == key {
			return p, nil
		}
	}
	return PriceClose, fmt.Errorf("알 수 없는 가격 유형: %q", s)
}

// DataItem은 하나의 OHLCV 봉을 표현합니다.
// 시가/고가/저가/종가 사이의 대소 관계는 검증하지 않습니다.
type DataItem struct {
	Time   int64   // 에포크 밀리초
	Open   float64 // 시가
	High   float64 // 고가
	Low    float64 // 저가
	Close  float64 // 종가
	Volume float64 // 거래량
}

// NewDataItem은 새로운 DataItem을 생성합니다
func NewDataItem(t int64, open, high, low, close, volume float64) DataItem {
	return DataItem{Time: t, Open: open, High: high, Low: low, Close: close, Volume: volume}
}

// Timestamp는 Time 필드를 time.Time으로 변환합니다
func (d DataItem) Timestamp() time.Time {
	return time.UnixMilli(d.Time)
}

// Price는 PriceType에 해당하는 가격을 반환합니다
func (d DataItem) Price(p PriceType) float64 {
	switch p {
	case PriceOpen:
		return d.Open
	case PriceHigh:
		return d.High
	case PriceLow:
		return d.Low
	case PriceClose:
		return d.Close
	case PriceVolume:
		return d.Volume
	case PriceTypical:
		return (d.High + d.Low + d.Close) / 3
	case PriceMedian:
		return (d.High + d.Low) / 2
	case PriceWeighted:
		return (d.High + d.Low + 2*d.Close) / 4
	default:
		return 0
	}
}

// Compare는 시간 순서로 두 봉을 비교합니다 (-1, 0, 1)
func (d DataItem) Compare(other DataItem) int {
	switch {
	case d.Time < other.Time:
		return -1
	case d.Time > other.Time:
		return 1
	default:
		return 0
	}
}

// UpdateClose는 other의 종가를 반영하고 값이 바뀌었는지 반환합니다.
// 허용 오차 없이 비트 단위로 비교하므로 NaN끼리는 같고 0과 -0은 다릅니다.
func (d *DataItem) UpdateClose(other DataItem) bool {
	if math.Float64bits(d.Close) == math.Float64bits(other.Close) {
		return false
	}
	d.Close = other.Close
	return true
}

func (d DataItem) String() string {
	return fmt.Sprintf("%s O:%g H:%g L:%g C:%g V:%g",
		d.Timestamp().UTC().Format(time.RFC3339), d.Open, d.High, d.Low, d.Close, d.Volume)
}
