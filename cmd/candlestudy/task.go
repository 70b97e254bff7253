package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/assist-by/candlestudy/internal/config"
	"github.com/assist-by/candlestudy/internal/dataset"
	"github.com/assist-by/candlestudy/internal/domain"
	"github.com/assist-by/candlestudy/internal/export"
	"github.com/assist-by/candlestudy/internal/study"
)

// candleSource는 캔들 조회 기능을 정의합니다
type candleSource interface {
	GetCandles(ctx context.Context, symbol string, interval domain.TimeInterval, limit int) (domain.CandleList, error)
}

// studyTask는 캔들 조회, 지표 계산, 축 범위 계산, 내보내기를 한 번 수행하는 작업입니다
type studyTask struct {
	cfg    *config.Config
	specs  []study.Spec
	source candleSource
	writer export.Writer
	logger *zap.Logger

	last *dataset.Dataset // 직전 실행의 가격 데이터
}

func newStudyTask(cfg *config.Config, specs []study.Spec, source candleSource, logger *zap.Logger) (*studyTask, error) {
	writer, err := export.NewWriter(cfg.App.ExportFormat)
	if err != nil {
		return nil, err
	}
	return &studyTask{
		cfg:    cfg,
		specs:  specs,
		source: source,
		writer: writer,
		logger: logger,
	}, nil
}

// Execute는 스터디를 실행합니다. 직전 실행과 봉 구성과 마지막 종가가 같으면 건너뜁니다.
func (t *studyTask) Execute(ctx context.Context) error {
	app := t.cfg.App
	candles, err := t.source.GetCandles(ctx, app.Symbol, domain.TimeInterval(app.Interval), app.CandleLimit)
	if err != nil {
		return err
	}
	if app.Aggregate != "" {
		candles, err = domain.Aggregate(candles, domain.TimeInterval(app.Aggregate))
		if err != nil {
			return err
		}
	}

	lastCandle, ok := candles.Last()
	if !ok {
		return fmt.Errorf("%s %s 캔들 데이터가 비어있습니다", app.Symbol, app.Interval)
	}
	t.logger.Debug("마지막 캔들",
		zap.Time("openTime", lastCandle.OpenTime),
		zap.Float64("close", lastCandle.Close),
		zap.Float64("volume", lastCandle.Volume),
	)

	price := dataset.FromCandles(candles)
	if stale(t.last, price) {
		t.logger.Info("변경된 봉이 없어 계산을 건너뜁니다")
		return nil
	}
	t.last = price

	// 지표 계산
	cache := study.NewCache(t.logger)
	if err := cache.CacheIndicators(ctx, t.specs, price); err != nil {
		return err
	}

	// 가격 축 범위
	priceAxis, err := study.AutoRange(price, cache, study.Overlays(t.specs), app.AxisMargin)
	if err != nil {
		return err
	}
	t.logger.Info("가격 축 범위", zap.Stringer("range", priceAxis))

	// 내보내기
	path, err := export.WriteDataset(t.writer, app.ExportDir, app.Symbol, 0, price)
	if err != nil {
		return err
	}
	t.logger.Info("가격 데이터 저장", zap.String("path", path), zap.Int("bars", price.Len()))

	names := cache.GetIndicators()
	for _, name := range names {
		series, err := cache.GetIndicator(name)
		if err != nil {
			return err
		}
		r, err := study.AutoRange(nil, cache, []string{name}, app.AxisMargin)
		if err != nil {
			t.logger.Warn("지표 값이 없습니다", zap.String("name", name), zap.Error(err))
		}
		for i, s := range series {
			path, err := export.WriteDataset(t.writer, app.ExportDir, name, i, s)
			if err != nil {
				return err
			}
			last, _ := s.At(s.Len() - 1)
			t.logger.Info("지표 저장",
				zap.String("name", name),
				zap.Int("series", i),
				zap.Int("warmup", s.LeadingAbsent()),
				zap.Float64("last", last.Close),
				zap.Stringer("range", r),
				zap.String("path", path),
			)
		}
	}

	t.logger.Info("캔들 스터디 완료", zap.Int("indicators", len(names)))
	return nil
}

// stale은 새 데이터가 직전 데이터와 같은 봉 구성이고 마지막 봉도 그대로인지 확인합니다.
// 종가가 같아도 고가/저가/거래량이 바뀌었으면 다시 계산해야 합니다.
func stale(prev, next *dataset.Dataset) bool {
	n := prev.Len()
	if n == 0 || n != next.Len() || prev.Time(0) != next.Time(0) {
		return false
	}
	p, ok := prev.At(n - 1)
	q, okNext := next.At(n - 1)
	if !ok || !okNext || p.Time != q.Time {
		return false
	}
	if p.UpdateClose(q) {
		return false
	}
	return p == q
}
