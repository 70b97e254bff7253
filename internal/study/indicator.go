package study

import (
	"errors"
	"fmt"
	"strings"

	"github.com/assist-by/candlestudy/internal/dataset"
	"github.com/assist-by/candlestudy/internal/indicator"
)

// ErrUnknownIndicator는 지원하지 않는 지표 유형일 때 반환됩니다
var ErrUnknownIndicator = errors.New("지원하지 않는 지표 유형")

// Indicator는 모든 스터디 지표가 구현해야 하는 인터페이스입니다
type Indicator interface {
	// Calculate는 Dataset을 기반으로 지표 시계열들을 계산합니다
	Calculate(d *dataset.Dataset) ([]*dataset.Dataset, error)

	// GetName은 지표의 이름을 반환합니다
	GetName() string

	// GetConfig는 지표의 현재 설정을 반환합니다
	GetConfig() map[string]interface{}

	// UpdateConfig는 지표 설정을 업데이트합니다
	UpdateConfig(config map[string]interface{}) error
}

// BaseIndicator는 지표 구현체에서 공통으로 쓰는 이름과 설정을 담습니다
type BaseIndicator struct {
	Name   string
	Config map[string]interface{}
}

// GetName은 지표의 이름을 반환합니다
func (b *BaseIndicator) GetName() string {
	return b.Name
}

// GetConfig는 지표의 현재 설정을 반환합니다
func (b *BaseIndicator) GetConfig() map[string]interface{} {
	// 설정의 복사본 반환
	configCopy := make(map[string]interface{}, len(b.Config))
	for k, v := range b.Config {
		configCopy[k] = v
	}
	return configCopy
}

// UpdateConfig는 지표 설정을 업데이트합니다
func (b *BaseIndicator) UpdateConfig(config map[string]interface{}) error {
	if b.Config == nil {
		b.Config = make(map[string]interface{}, len(config))
	}
	for k, v := range config {
		b.Config[k] = v
	}
	return nil
}

type periodFunc func(*dataset.Dataset, int) (*dataset.Dataset, error)

// periodIndicator는 period 하나만 받는 단일 시계열 지표입니다
type periodIndicator struct {
	BaseIndicator
	calc periodFunc
}

func (p *periodIndicator) Calculate(d *dataset.Dataset) ([]*dataset.Dataset, error) {
	period, err := intParam(p.Config, "period")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	out, err := p.calc(d, period)
	if err != nil {
		return nil, err
	}
	return []*dataset.Dataset{out}, nil
}

// adxIndicator는 [+DI, -DI, ADX] 세 시계열을 냅니다
type adxIndicator struct {
	BaseIndicator
}

func (a *adxIndicator) Calculate(d *dataset.Dataset) ([]*dataset.Dataset, error) {
	period, err := intParam(a.Config, "period")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Name, err)
	}
	res, err := indicator.ADX(d, period)
	if err != nil {
		return nil, err
	}
	return res.Series(), nil
}

// macdIndicator는 [MACD, 시그널, 히스토그램] 세 시계열을 냅니다
type macdIndicator struct {
	BaseIndicator
}

func (m *macdIndicator) option() (indicator.MACDOption, error) {
	var opt indicator.MACDOption
	var err error
	if opt.ShortPeriod, err = intParam(m.Config, "shortPeriod"); err != nil {
		return opt, err
	}
	if opt.LongPeriod, err = intParam(m.Config, "longPeriod"); err != nil {
		return opt, err
	}
	if opt.SignalPeriod, err = intParam(m.Config, "signalPeriod"); err != nil {
		return opt, err
	}
	return opt, nil
}

func (m *macdIndicator) Calculate(d *dataset.Dataset) ([]*dataset.Dataset, error) {
	opt, err := m.option()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Name, err)
	}
	res, err := indicator.MACD(d, opt)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return []*dataset.Dataset{res.MACD, res.Signal, res.Histogram}, nil
}

// sarIndicator는 SAR 값 시계열 하나를 냅니다
type sarIndicator struct {
	BaseIndicator
}

func (s *sarIndicator) Calculate(d *dataset.Dataset) ([]*dataset.Dataset, error) {
	opt := indicator.DefaultSAROption()
	if v, ok := floatParam(s.Config, "accelerationInitial"); ok {
		opt.AccelerationInitial = v
	}
	if v, ok := floatParam(s.Config, "accelerationMax"); ok {
		opt.AccelerationMax = v
	}
	res, err := indicator.SAR(d, opt)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return []*dataset.Dataset{res.SAR}, nil
}

var periodFuncs = map[string]periodFunc{
	"SMA":    indicator.SMA,
	"EMA":    indicator.EMA,
	"WILDER": indicator.EMAWilder,
	"WMA":    indicator.WMA,
	"HMA":    indicator.HMA,
	"TEMA":   indicator.TEMA,
	"RSI":    indicator.RSI,
}

// SpecName은 유형과 파라미터로 지표 이름을 만듭니다 (예: EMA(20), MACD(12,26,9))
func SpecName(spec Spec) string {
	typ := strings.ToUpper(spec.Type)
	switch typ {
	case "MACD":
		short, err1 := intParam(spec.Parameters, "shortPeriod")
		long, err2 := intParam(spec.Parameters, "longPeriod")
		signal, err3 := intParam(spec.Parameters, "signalPeriod")
		if err1 == nil && err2 == nil && err3 == nil {
			return fmt.Sprintf("%s(%d,%d,%d)", typ, short, long, signal)
		}
	case "SAR":
		initial, initialOk := floatParam(spec.Parameters, "accelerationInitial")
		limit, maxOk := floatParam(spec.Parameters, "accelerationMax")
		if initialOk && maxOk {
			return fmt.Sprintf("%s(%.2f,%.2f)", typ, initial, limit)
		}
	default:
		if period, err := intParam(spec.Parameters, "period"); err == nil {
			return fmt.Sprintf("%s(%d)", typ, period)
		}
	}
	return typ
}

// CreateIndicator는 지표 명세에 따라 지표 인스턴스를 생성합니다
func CreateIndicator(spec Spec) (Indicator, error) {
	typ := strings.ToUpper(spec.Type)
	base := BaseIndicator{Name: SpecName(spec)}
	if err := base.UpdateConfig(spec.Parameters); err != nil {
		return nil, err
	}

	if calc, ok := periodFuncs[typ]; ok {
		if _, err := intParam(spec.Parameters, "period"); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return &periodIndicator{BaseIndicator: base, calc: calc}, nil
	}

	switch typ {
	case "ADX":
		if _, err := intParam(spec.Parameters, "period"); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return &adxIndicator{BaseIndicator: base}, nil

	case "MACD":
		ind := &macdIndicator{BaseIndicator: base}
		if _, err := ind.option(); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return ind, nil

	case "SAR":
		// 파라미터가 없으면 기본값 사용
		return &sarIndicator{BaseIndicator: base}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndicator, spec.Type)
	}
}

// 가격과 같은 축에 그리는 지표 유형
var overlayTypes = map[string]bool{
	"SMA": true, "EMA": true, "WILDER": true, "WMA": true, "HMA": true, "TEMA": true, "SAR": true,
}

// Overlays는 명세 중 가격 축에 겹쳐 그리는 지표들의 이름을 반환합니다.
// ADX, RSI, MACD 같은 오실레이터는 별도 축을 쓰므로 제외됩니다.
func Overlays(specs []Spec) []string {
	var names []string
	seen := make(map[string]bool)
	for _, spec := range specs {
		name := SpecName(spec)
		if overlayTypes[strings.ToUpper(spec.Type)] && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
