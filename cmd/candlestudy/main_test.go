package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/assist-by/candlestudy/internal/config"
	"github.com/assist-by/candlestudy/internal/dataset"
	"github.com/assist-by/candlestudy/internal/domain"
	"github.com/assist-by/candlestudy/internal/study"
)

func TestApplyFlags(t *testing.T) {
	var cfg config.Config
	cfg.App.Symbol = "BTCUSDT"
	cfg.App.Interval = "1h"
	cfg.App.StudyFile = "configs/study.yaml"
	cfg.App.ExportFormat = "csv"

	applyFlags(&cfg, "", "4h", "1d", "", "json")
	assert.Equal(t, "BTCUSDT", cfg.App.Symbol)
	assert.Equal(t, "4h", cfg.App.Interval)
	assert.Equal(t, "1d", cfg.App.Aggregate)
	assert.Equal(t, "configs/study.yaml", cfg.App.StudyFile)
	assert.Equal(t, "json", cfg.App.ExportFormat)
}

type fakeSource struct {
	candles domain.CandleList
	calls   int
}

func (f *fakeSource) GetCandles(context.Context, string, domain.TimeInterval, int) (domain.CandleList, error) {
	f.calls++
	return f.candles, nil
}

func testCandles(n int) domain.CandleList {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make(domain.CandleList, n)
	for i := range candles {
		base := 100 + float64(i)
		candles[i] = domain.Candle{
			OpenTime: start.Add(time.Duration(i) * time.Hour),
			Open:     base,
			High:     base + 2,
			Low:      base - 1,
			Close:    base + 1,
			Volume:   10,
			Symbol:   "BTCUSDT",
			Interval: domain.Interval1h,
		}
	}
	return candles
}

func TestStudyTask_Execute(t *testing.T) {
	var cfg config.Config
	cfg.App.Symbol = "BTCUSDT"
	cfg.App.Interval = "1h"
	cfg.App.CandleLimit = 60
	cfg.App.ExportFormat = "csv"
	cfg.App.ExportDir = t.TempDir()
	cfg.App.AxisMargin = 0.05

	specs := []study.Spec{
		{Type: "EMA", Parameters: map[string]interface{}{"period": 5}},
		{Type: "ADX", Parameters: map[string]interface{}{"period": 5}},
	}
	source := &fakeSource{candles: testCandles(60)}

	task, err := newStudyTask(&cfg, specs, source, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, task.Execute(context.Background()))

	for _, name := range []string{"BTCUSDT.csv", "EMA_5.csv", "ADX_5.csv", "ADX_5_1.csv", "ADX_5_2.csv"} {
		assert.FileExists(t, filepath.Join(cfg.App.ExportDir, name))
	}

	// 같은 데이터로 다시 실행하면 건너뜀
	require.NoError(t, os.Remove(filepath.Join(cfg.App.ExportDir, "EMA_5.csv")))
	require.NoError(t, task.Execute(context.Background()))
	assert.NoFileExists(t, filepath.Join(cfg.App.ExportDir, "EMA_5.csv"))

	// 마지막 종가가 바뀌면 다시 계산
	source.candles[59].Close += 0.5
	require.NoError(t, task.Execute(context.Background()))
	assert.FileExists(t, filepath.Join(cfg.App.ExportDir, "EMA_5.csv"))
	assert.Equal(t, 3, source.calls)
}

func TestStale(t *testing.T) {
	prev := dataset.FromCandles(testCandles(5))

	assert.False(t, stale(nil, prev))
	assert.True(t, stale(prev, dataset.FromCandles(testCandles(5))))
	assert.False(t, stale(prev, dataset.FromCandles(testCandles(6))))

	changed := testCandles(5)
	changed[4].Close = 0
	assert.False(t, stale(prev, dataset.FromCandles(changed)))

	t.Run("종가가 같아도 고가/저가/거래량이 바뀌면 다시 계산", func(t *testing.T) {
		widened := testCandles(5)
		widened[4].High += 4
		widened[4].Low -= 4
		assert.False(t, stale(prev, dataset.FromCandles(widened)))

		traded := testCandles(5)
		traded[4].Volume = 99
		assert.False(t, stale(prev, dataset.FromCandles(traded)))
	})
}
