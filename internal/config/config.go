package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// 지원하는 내보내기 형식
var exportFormats = map[string]bool{"csv": true, "json": true, "parquet": true}

// 지원하는 시간 간격 (domain.TimeInterval과 같은 값)
var intervals = map[string]bool{
	"1m": true, "3m": true, "5m": true, "15m": true, "30m": true,
	"1h": true, "2h": true, "4h": true, "6h": true, "8h": true, "12h": true, "1d": true,
}

type Config struct {
	// 바이낸스 API 설정 (klines는 공개 API라 키는 선택)
	Binance struct {
		APIKey    string `envconfig:"BINANCE_API_KEY"`
		SecretKey string `envconfig:"BINANCE_SECRET_KEY"`
		BaseURL   string `envconfig:"BINANCE_BASE_URL" default:"https://api.binance.com"`
	}

	// 애플리케이션 설정
	App struct {
		Symbol       string        `envconfig:"SYMBOL" default:"BTCUSDT"`
		Interval     string        `envconfig:"INTERVAL" default:"1h"`
		Aggregate    string        `envconfig:"AGGREGATE_INTERVAL"` // 비어 있으면 묶지 않음
		CandleLimit  int           `envconfig:"CANDLE_LIMIT" default:"500"`
		StudyFile    string        `envconfig:"STUDY_FILE" default:"configs/study.yaml"`
		ExportFormat string        `envconfig:"EXPORT_FORMAT" default:"csv"`
		ExportDir    string        `envconfig:"EXPORT_DIR" default:"out"`
		AxisMargin   float64       `envconfig:"AXIS_MARGIN" default:"0.05"`
		FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
		Watch        time.Duration `envconfig:"WATCH_INTERVAL" default:"0s"` // 0이면 한 번만 실행
	}

	// 로그 설정
	Log LogConfig
}

// LogConfig는 로거 설정입니다
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Format      string `envconfig:"LOG_FORMAT" default:"console"`
	OutputFile  string `envconfig:"LOG_OUTPUT_FILE"`
	Environment string `envconfig:"LOG_ENVIRONMENT" default:"prod"`
}

// ValidateConfig는 설정이 유효한지 확인합니다.
func ValidateConfig(cfg *Config) error {
	if cfg.App.Symbol == "" {
		return fmt.Errorf("SYMBOL은 비어 있을 수 없습니다")
	}

	if !intervals[cfg.App.Interval] {
		return fmt.Errorf("지원하지 않는 INTERVAL: %s", cfg.App.Interval)
	}

	if cfg.App.Aggregate != "" && !intervals[cfg.App.Aggregate] {
		return fmt.Errorf("지원하지 않는 AGGREGATE_INTERVAL: %s", cfg.App.Aggregate)
	}

	if cfg.App.CandleLimit < 1 || cfg.App.CandleLimit > 1000 {
		return fmt.Errorf("CANDLE_LIMIT은 1 이상 1000 이하이어야 합니다")
	}

	cfg.App.ExportFormat = strings.ToLower(cfg.App.ExportFormat)
	if !exportFormats[cfg.App.ExportFormat] {
		return fmt.Errorf("지원하지 않는 EXPORT_FORMAT: %s", cfg.App.ExportFormat)
	}

	if cfg.App.AxisMargin < 0 {
		return fmt.Errorf("AXIS_MARGIN은 0 이상이어야 합니다")
	}

	if cfg.App.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT은 0보다 커야 합니다")
	}

	if cfg.App.Watch < 0 || (cfg.App.Watch > 0 && cfg.App.Watch < time.Second) {
		return fmt.Errorf("WATCH_INTERVAL은 0 또는 1초 이상이어야 합니다")
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (없으면 환경변수만 사용)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}
