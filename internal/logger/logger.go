package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/assist-by/candlestudy/internal/config"
)

// 로그 파일 로테이션 설정
const (
	maxFileSizeMB = 10
	maxBackups    = 5
	maxAgeDays    = 7
)

// New는 설정에 따라 표준 출력과 선택적 파일 출력(로테이션)을 갖는 zap.Logger를 생성합니다.
// 표준 출력은 LOG_FORMAT(또는 dev 환경)에 따라 console/json으로 인코딩하고,
// 파일은 항상 JSON으로 기록합니다.
func New(opts config.LogConfig) (*zap.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder(opts), zapcore.Lock(os.Stdout), lvl),
	}

	if opts.OutputFile != "" {
		fileCore, err := rotatingFileCore(opts.OutputFile, lvl)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func parseLevel(text string) (zapcore.Level, error) {
	if text == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return lvl, fmt.Errorf("잘못된 로그 레벨: %w", err)
	}
	return lvl, nil
}

// stdoutEncoder는 dev 환경이거나 형식이 console이면 사람이 읽기 쉬운 인코더를,
// 그 외에는 JSON 인코더를 반환합니다
func stdoutEncoder(opts config.LogConfig) zapcore.Encoder {
	if opts.Environment == "dev" || opts.Format == "console" {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
}

func rotatingFileCore(path string, lvl zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉터리 생성 실패: %w", err)
	}
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxFileSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	})
	return zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), writer, lvl), nil
}
