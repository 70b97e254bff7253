package market

import (
	"context"
	"fmt"
	"time"

	binance_connector "github.com/binance/binance-connector-go"
	"go.uber.org/zap"

	"github.com/assist-by/candlestudy/internal/domain"
)

// MaxCandleLimit는 klines 요청 한 번에 받을 수 있는 최대 캔들 수입니다
const MaxCandleLimit = 1000

// klinesFetcher는 klines 원본 응답을 가져오는 함수입니다
type klinesFetcher func(ctx context.Context, symbol, interval string, limit int) ([]*binance_connector.KlinesResponse, error)

// Client는 바이낸스 현물 시세 클라이언트를 구현합니다
type Client struct {
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
	fetch   klinesFetcher
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithBaseURL은 기본 URL을 설정합니다
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout은 요청별 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger는 로거를 설정합니다
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient는 새로운 바이낸스 시세 클라이언트를 생성합니다.
// klines 조회는 공개 API이므로 키는 비어 있어도 됩니다.
func NewClient(apiKey, secretKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: "https://api.binance.com", // 기본값은 현물 거래소
		timeout: 10 * time.Second,
		logger:  zap.NewNop(),
	}

	// 옵션 적용
	for _, opt := range opts {
		opt(c)
	}

	conn := binance_connector.NewClient(apiKey, secretKey, c.baseURL)
	c.fetch = func(ctx context.Context, symbol, interval string, limit int) ([]*binance_connector.KlinesResponse, error) {
		return conn.NewKlinesService().
			Symbol(symbol).
			Interval(interval).
			Limit(limit).
			Do(ctx)
	}
	return c
}

// GetCandles는 캔들 데이터를 조회하여 시작 시간 오름차순의 CandleList로 반환합니다
func (c *Client) GetCandles(ctx context.Context, symbol string, interval domain.TimeInterval, limit int) (domain.CandleList, error) {
	if symbol == "" {
		return nil, fmt.Errorf("심볼이 비어 있습니다")
	}
	if !interval.IsValid() {
		return nil, fmt.Errorf("지원하지 않는 시간 간격: %q", string(interval))
	}
	if limit < 1 || limit > MaxCandleLimit {
		return nil, fmt.Errorf("캔들 수는 1~%d 사이여야 합니다: %d", MaxCandleLimit, limit)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := c.fetch(ctx, symbol, string(interval), limit)
	if err != nil {
		return nil, fmt.Errorf("캔들 데이터 조회 실패 (%s %s): %w", symbol, interval, err)
	}

	candles, err := toCandles(raw, symbol, interval)
	if err != nil {
		return nil, err
	}

	c.logger.Info("캔들 데이터 조회 완료",
		zap.String("symbol", symbol),
		zap.String("interval", string(interval)),
		zap.Int("count", len(candles)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return candles, nil
}
