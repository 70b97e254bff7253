// Package export는 Dataset을 CSV, JSON, Parquet 파일로 저장합니다.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// Row는 파일로 저장되는 봉 한 개입니다. 빈 칸은 Valid=false, 값은 모두 0입니다.
type Row struct {
	Time   int64   `json:"t" parquet:"t"`
	Open   float64 `json:"o" parquet:"o"`
	High   float64 `json:"h" parquet:"h"`
	Low    float64 `json:"l" parquet:"l"`
	Close  float64 `json:"c" parquet:"c"`
	Volume float64 `json:"v" parquet:"v"`
	Valid  bool    `json:"valid" parquet:"valid"`
}

// Writer는 Dataset을 한 파일로 저장하는 형식별 구현의 추상화입니다
type Writer interface {
	Write(rows []Row, path string) error
	Extension() string
}

// NewWriter는 형식(csv, json, parquet)에 맞는 Writer를 반환합니다
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVWriter{}, nil
	case "json":
		return JSONWriter{}, nil
	case "parquet":
		return ParquetWriter{}, nil
	default:
		return nil, fmt.Errorf("지원하지 않는 내보내기 형식 %q (csv, json, parquet)", format)
	}
}

// Rows는 Dataset의 모든 칸을 Row로 변환합니다
func Rows(d *dataset.Dataset) []Row {
	rows := make([]Row, d.Len())
	for i := range rows {
		item, ok := d.At(i)
		if !ok {
			continue
		}
		rows[i] = Row{
			Time:   item.Time,
			Open:   item.Open,
			High:   item.High,
			Low:    item.Low,
			Close:  item.Close,
			Volume: item.Volume,
			Valid:  true,
		}
	}
	return rows
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName은 지표 이름으로 파일 이름을 만듭니다 (예: "MACD(12,26,9)", 1 → "MACD_12_26_9_1.csv")
func FileName(name string, series int, ext string) string {
	base := strings.Trim(unsafeChars.ReplaceAllString(name, "_"), "_")
	if base == "" {
		base = "series"
	}
	if series > 0 {
		base = fmt.Sprintf("%s_%d", base, series)
	}
	return base + "." + ext
}

// WriteDataset은 dir 아래에 Dataset을 저장하고 저장된 경로를 반환합니다
func WriteDataset(w Writer, dir, name string, series int, d *dataset.Dataset) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("출력 디렉터리 생성 실패: %w", err)
	}
	path := filepath.Join(dir, FileName(name, series, w.Extension()))
	if err := w.Write(Rows(d), path); err != nil {
		return "", fmt.Errorf("'%s' 저장 실패: %w", path, err)
	}
	return path, nil
}
