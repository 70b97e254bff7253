// Package study는 지표 명세를 읽고, 지표를 생성하여 한 번씩 계산해 두는 캐시와
// 차트 축 범위 계산을 제공합니다.
package study

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec은 지표 명세를 나타냅니다
type Spec struct {
	Type       string                 `yaml:"type"`       // 지표 유형 (SMA, EMA, ADX 등)
	Parameters map[string]interface{} `yaml:"parameters"` // 지표 파라미터
}

// File은 스터디 YAML 파일의 구조입니다
type File struct {
	Indicators []Spec `yaml:"indicators"`
}

// LoadSpecs는 YAML 파일에서 지표 명세 목록을 읽습니다
func LoadSpecs(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("스터디 파일 읽기 실패: %w", err)
	}
	return ParseSpecs(data)
}

// ParseSpecs는 YAML 바이트에서 지표 명세 목록을 읽습니다
func ParseSpecs(data []byte) ([]Spec, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("스터디 파일 파싱 실패: %w", err)
	}
	for i, spec := range file.Indicators {
		if spec.Type == "" {
			return nil, fmt.Errorf("%d번째 지표에 type이 없습니다", i+1)
		}
		if spec.Parameters == nil {
			file.Indicators[i].Parameters = map[string]interface{}{}
		}
	}
	return file.Indicators, nil
}

// DefaultSpecs는 스터디 파일이 없을 때 사용할 기본 지표 명세를 반환합니다
func DefaultSpecs() []Spec {
	return []Spec{
		{Type: "EMA", Parameters: map[string]interface{}{"period": 20}},
		{Type: "HMA", Parameters: map[string]interface{}{"period": 16}},
		{Type: "ADX", Parameters: map[string]interface{}{"period": 14}},
	}
}

// intParam은 정수 파라미터를 읽습니다. YAML에서 온 int64/float64도 정수 값이면 허용합니다.
func intParam(params map[string]interface{}, key string) (int, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("'%s' 파라미터가 필요합니다", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("'%s' 파라미터는 정수여야 합니다: %v", key, v)
}

// floatParam은 실수 파라미터를 읽습니다
func floatParam(params map[string]interface{}, key string) (float64, bool) {
	switch n := params[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
