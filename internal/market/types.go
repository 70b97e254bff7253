package market

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	binance_connector "github.com/binance/binance-connector-go"

	"github.com/assist-by/candlestudy/internal/domain"
)

// toCandles는 klines 응답을 CandleList로 변환합니다.
// 숫자 문자열 파싱에 실패하면 해당 봉 위치를 담은 에러를 반환합니다.
func toCandles(raw []*binance_connector.KlinesResponse, symbol string, interval domain.TimeInterval) (domain.CandleList, error) {
	candles := make(domain.CandleList, 0, len(raw))
	for i, k := range raw {
		if k == nil {
			continue
		}
		candle, err := toCandle(k, symbol, interval)
		if err != nil {
			return nil, fmt.Errorf("%d번째 캔들 변환 실패: %w", i, err)
		}
		candles = append(candles, candle)
	}

	if !candles.IsSorted() {
		sort.SliceStable(candles, func(a, b int) bool {
			return candles[a].OpenTime.Before(candles[b].OpenTime)
		})
	}
	return candles, nil
}

func toCandle(k *binance_connector.KlinesResponse, symbol string, interval domain.TimeInterval) (domain.Candle, error) {
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"open", k.Open, new(float64)},
		{"high", k.High, new(float64)},
		{"low", k.Low, new(float64)},
		{"close", k.Close, new(float64)},
		{"volume", k.Volume, new(float64)},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return domain.Candle{}, fmt.Errorf("%s 파싱 실패: %w", f.name, err)
		}
		*f.dst = v
	}

	return domain.Candle{
		OpenTime:  time.UnixMilli(int64(k.OpenTime)),
		CloseTime: time.UnixMilli(int64(k.CloseTime)),
		Open:      *fields[0].dst,
		High:      *fields[1].dst,
		Low:       *fields[2].dst,
		Close:     *fields[3].dst,
		Volume:    *fields[4].dst,
		Symbol:    symbol,
		Interval:  interval,
	}, nil
}
