package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	osSignal "os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/assist-by/candlestudy/internal/config"
	"github.com/assist-by/candlestudy/internal/logger"
	"github.com/assist-by/candlestudy/internal/market"
	"github.com/assist-by/candlestudy/internal/scheduler"
	"github.com/assist-by/candlestudy/internal/study"
)

func main() {
	// 명령줄 플래그 정의
	symbolFlag := flag.String("symbol", "", "심볼 (미지정 시 SYMBOL 환경변수)")
	intervalFlag := flag.String("interval", "", "시간 간격 (미지정 시 INTERVAL 환경변수)")
	aggregateFlag := flag.String("aggregate", "", "조회한 캔들을 묶을 더 긴 시간 간격")
	studyFlag := flag.String("study", "", "스터디 YAML 파일 경로")
	formatFlag := flag.String("format", "", "내보내기 형식 (csv, json, parquet)")
	watchFlag := flag.Duration("watch", 0, "이 주기마다 다시 계산 (0이면 한 번만 실행)")
	flag.Parse()

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *symbolFlag, *intervalFlag, *aggregateFlag, *studyFlag, *formatFlag)
	if *watchFlag > 0 {
		cfg.App.Watch = *watchFlag
	}
	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "설정값 검증 실패: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 종료 시그널 처리
	ctx, stop := osSignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("스터디 실행 실패", zap.Error(err))
	}
	log.Info("캔들 스터디 종료")
}

func applyFlags(cfg *config.Config, symbol, interval, aggregate, studyFile, format string) {
	if symbol != "" {
		cfg.App.Symbol = symbol
	}
	if interval != "" {
		cfg.App.Interval = interval
	}
	if aggregate != "" {
		cfg.App.Aggregate = aggregate
	}
	if studyFile != "" {
		cfg.App.StudyFile = studyFile
	}
	if format != "" {
		cfg.App.ExportFormat = format
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// 스터디 명세 로드
	specs, err := study.LoadSpecs(cfg.App.StudyFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("스터디 파일이 없어 기본 지표를 사용합니다", zap.String("path", cfg.App.StudyFile))
		specs = study.DefaultSpecs()
	} else if err != nil {
		return err
	}

	client := market.NewClient(
		cfg.Binance.APIKey,
		cfg.Binance.SecretKey,
		market.WithBaseURL(cfg.Binance.BaseURL),
		market.WithTimeout(cfg.App.FetchTimeout),
		market.WithLogger(log),
	)

	task, err := newStudyTask(cfg, specs, client, log)
	if err != nil {
		return err
	}

	if err := task.Execute(ctx); err != nil {
		return err
	}
	if cfg.App.Watch <= 0 {
		return nil
	}

	log.Info("감시 모드 시작", zap.Duration("every", cfg.App.Watch))
	return scheduler.NewScheduler(cfg.App.Watch, task, log).Start(ctx)
}
