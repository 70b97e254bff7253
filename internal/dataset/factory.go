package dataset

import "github.com/assist-by/candlestudy/internal/domain"

// AskItem은 외부 호가 봉의 매도 호가 OHLC로 DataItem을 만듭니다. 거래량은 0입니다.
func AskItem(bar domain.QuoteBar) DataItem {
	return quoteItem(bar, bar.Ask)
}

// BidItem은 외부 호가 봉의 매수 호가 OHLC로 DataItem을 만듭니다. 거래량은 0입니다.
func BidItem(bar domain.QuoteBar) DataItem {
	return quoteItem(bar, bar.Bid)
}

func quoteItem(bar domain.QuoteBar, q domain.Quote) DataItem {
	return DataItem{
		Time:  bar.Time.UnixMilli(),
		Open:  q.Open,
		High:  q.High,
		Low:   q.Low,
		Close: q.Close,
	}
}

// FromAsk는 호가 봉 목록을 매도 호가 기준 Dataset으로 변환합니다
func FromAsk(bars []domain.QuoteBar) *Dataset {
	return fromQuoteBars(bars, AskItem)
}

// FromBid는 호가 봉 목록을 매수 호가 기준 Dataset으로 변환합니다
func FromBid(bars []domain.QuoteBar) *Dataset {
	return fromQuoteBars(bars, BidItem)
}

func fromQuoteBars(bars []domain.QuoteBar, side func(domain.QuoteBar) DataItem) *Dataset {
	items := make([]DataItem, len(bars))
	for i, bar := range bars {
		items[i] = side(bar)
	}
	return New(items)
}

// FromCandles는 거래소 캔들 목록을 Dataset으로 변환합니다. 거래량을 유지합니다.
func FromCandles(candles domain.CandleList) *Dataset {
	items := make([]DataItem, len(candles))
	for i, c := range candles {
		items[i] = DataItem{
			Time:   c.OpenTime.UnixMilli(),
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		}
	}
	return New(items)
}
