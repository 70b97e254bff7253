package domain

import "time"

// Candle은 거래소에서 받은 단일 방향(체결가 기준) 캔들 데이터를 표현합니다
type Candle struct {
	OpenTime  time.Time    // 캔들 시작 시간
	CloseTime time.Time    // 캔들 종료 시간
	Open      float64      // 시가
	High      float64      // 고가
	Low       float64      // 저가
	Close     float64      // 종가
	Volume    float64      // 거래량
	Symbol    string       // 심볼 (예: BTCUSDT)
	Interval  TimeInterval // 시간 간격 (예: 15m, 1h)
}

// CandleList는 캔들 데이터 목록입니다
type CandleList []Candle

// Last는 가장 최근 캔들을 반환합니다. 목록이 비어 있으면 false입니다.
func (cl CandleList) Last() (Candle, bool) {
	if n := len(cl); n > 0 {
		return cl[n-1], true
	}
	return Candle{}, false
}

// IsSorted는 캔들이 시작 시간 오름차순으로 정렬되어 있는지 확인합니다
func (cl CandleList) IsSorted() bool {
	for i := 1; i < len(cl); i++ {
		if cl[i].OpenTime.Before(cl[i-1].OpenTime) {
			return false
		}
	}
	return true
}
