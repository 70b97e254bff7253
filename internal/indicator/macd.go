package indicator

import (
	"fmt"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// MACDOption은 MACD 계산에 필요한 옵션을 정의합니다
type MACDOption struct {
	ShortPeriod  int // 단기 EMA 기간
	LongPeriod   int // 장기 EMA 기간
	SignalPeriod int // 시그널 라인 기간
}

// DefaultMACDOption은 12/26/9 기본 옵션을 반환합니다
func DefaultMACDOption() MACDOption {
	return MACDOption{ShortPeriod: 12, LongPeriod: 26, SignalPeriod: 9}
}

// ValidateMACDOption은 MACD 옵션을 검증합니다
func ValidateMACDOption(opt MACDOption) error {
	if opt.ShortPeriod <= 0 {
		return &ValidationError{
			Field: "ShortPeriod",
			Err:   fmt.Errorf("단기 기간은 0보다 커야 합니다: %d", opt.ShortPeriod),
		}
	}
	if opt.LongPeriod <= opt.ShortPeriod {
		return &ValidationError{
			Field: "LongPeriod",
			Err:   fmt.Errorf("장기 기간은 단기 기간보다 커야 합니다: %d <= %d", opt.LongPeriod, opt.ShortPeriod),
		}
	}
	if opt.SignalPeriod <= 0 {
		return &ValidationError{
			Field: "SignalPeriod",
			Err:   fmt.Errorf("시그널 기간은 0보다 커야 합니다: %d", opt.SignalPeriod),
		}
	}
	return nil
}

// MACDResult는 MACD 계산 결과의 세 시계열입니다
type MACDResult struct {
	MACD      *dataset.Dataset // 단기 EMA - 장기 EMA
	Signal    *dataset.Dataset // MACD의 EMA
	Histogram *dataset.Dataset // MACD - 시그널
}

// MACD는 Moving Average Convergence Divergence 지표를 계산합니다
func MACD(d *dataset.Dataset, opt MACDOption) (*MACDResult, error) {
	if d == nil {
		return nil, nil
	}
	if err := ValidateMACDOption(opt); err != nil {
		return nil, err
	}

	shortEMA, err := EMA(d, opt.ShortPeriod)
	if err != nil {
		return nil, fmt.Errorf("단기 EMA 계산 실패: %w", err)
	}
	longEMA, err := EMA(d, opt.LongPeriod)
	if err != nil {
		return nil, fmt.Errorf("장기 EMA 계산 실패: %w", err)
	}

	macdLine := dataset.Diff(shortEMA, longEMA)
	signal, err := EMA(macdLine, opt.SignalPeriod)
	if err != nil {
		return nil, fmt.Errorf("시그널 라인 계산 실패: %w", err)
	}

	return &MACDResult{
		MACD:      macdLine,
		Signal:    signal,
		Histogram: dataset.Diff(macdLine, signal),
	}, nil
}
