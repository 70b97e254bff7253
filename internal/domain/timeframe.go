package domain

import (
	"fmt"
	"time"
)

// Aggregate는 캔들을 더 긴 시간 간격의 캔들로 묶습니다.
// 각 캔들은 시작 시간을 target 간격으로 자른(UTC 기준) 구간에 들어가며,
//   - 시가: 구간 첫 캔들의 시가
//   - 고가/저가: 구간 내 최고가/최저가
//   - 종가: 구간 마지막 캔들의 종가
//   - 거래량: 구간 거래량 합계
//
// 마지막 구간은 아직 진행 중일 수 있습니다.
func Aggregate(candles CandleList, target TimeInterval) (CandleList, error) {
	bucket, err := target.Duration()
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("캔들 데이터가 비어있습니다")
	}
	if !candles.IsSorted() {
		return nil, fmt.Errorf("캔들 데이터가 시간순으로 정렬되어 있지 않습니다")
	}
	if src, err := candles[0].Interval.Duration(); err == nil && src > bucket {
		return nil, fmt.Errorf("더 짧은 간격으로는 묶을 수 없습니다: %s -> %s", candles[0].Interval, target)
	}

	var result CandleList
	for _, candle := range candles {
		start := candle.OpenTime.UTC().Truncate(bucket)
		if n := len(result); n > 0 && result[n-1].OpenTime.Equal(start) {
			merge(&result[n-1], candle)
			continue
		}
		result = append(result, Candle{
			Symbol:    candle.Symbol,
			Interval:  target,
			OpenTime:  start,
			CloseTime: start.Add(bucket - time.Millisecond),
			Open:      candle.Open,
			High:      candle.High,
			Low:       candle.Low,
			Close:     candle.Close,
			Volume:    candle.Volume,
		})
	}
	return result, nil
}

// merge는 뒤따르는 캔들을 묶음 캔들에 합칩니다
func merge(agg *Candle, next Candle) {
	if next.High > agg.High {
		agg.High = next.High
	}
	if next.Low < agg.Low {
		agg.Low = next.Low
	}
	agg.Close = next.Close
	agg.Volume += next.Volume
}
