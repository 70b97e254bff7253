package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// CSVWriter는 헤더 t,o,h,l,c,v,valid 의 CSV로 저장합니다
type CSVWriter struct{}

func (CSVWriter) Extension() string { return "csv" }

func (CSVWriter) Write(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"t", "o", "h", "l", "c", "v", "valid"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			strconv.FormatInt(r.Time, 10),
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
			floatStr(r.Volume),
			strconv.FormatBool(r.Valid),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func floatStr(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// JSONWriter는 들여쓰기한 JSON 배열로 저장합니다
type JSONWriter struct{}

func (JSONWriter) Extension() string { return "json" }

func (JSONWriter) Write(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return f.Close()
}

// ParquetWriter는 Parquet 파일로 저장합니다
type ParquetWriter struct{}

func (ParquetWriter) Extension() string { return "parquet" }

func (ParquetWriter) Write(rows []Row, path string) error {
	return parquet.WriteFile(path, rows)
}
