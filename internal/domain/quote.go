package domain

import "time"

// Quote는 한쪽 호가(매도 또는 매수)의 OHLC 네 값을 표현합니다
type Quote struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// QuoteBar는 외부 가격 이력 저장소가 제공하는 양방향 호가 봉입니다.
// FX 데이터처럼 체결 거래량이 없는 시장을 위한 레코드이며 Ask/Bid 중
// 한쪽을 골라 지표 계산용 데이터로 변환합니다.
type QuoteBar struct {
	Time time.Time // 봉 시작 시간
	Ask  Quote     // 매도 호가 OHLC
	Bid  Quote     // 매수 호가 OHLC
}

// Spread는 종가 기준 매도/매수 호가 차이를 반환합니다
func (b QuoteBar) Spread() float64 {
	return b.Ask.Close - b.Bid.Close
}
