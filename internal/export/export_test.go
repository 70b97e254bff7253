package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/candlestudy/internal/dataset"
)

// 앞 칸이 비어 있는 테스트 데이터
func sampleDataset() *dataset.Dataset {
	d := dataset.Empty(3)
	d.Set(1, dataset.NewDataItem(60_000, 1, 2, 0.5, 1.5, 10))
	d.Set(2, dataset.NewDataItem(120_000, 1.5, 2.5, 1, 2, 20))
	return d
}

func TestRows(t *testing.T) {
	rows := Rows(sampleDataset())
	require.Len(t, rows, 3)
	assert.Equal(t, Row{}, rows[0])
	assert.Equal(t, Row{Time: 60_000, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10, Valid: true}, rows[1])
	assert.Empty(t, Rows(nil))
}

func TestNewWriter(t *testing.T) {
	for format, ext := range map[string]string{"csv": "csv", " JSON ": "json", "Parquet": "parquet"} {
		w, err := NewWriter(format)
		require.NoError(t, err)
		assert.Equal(t, ext, w.Extension())
	}
	_, err := NewWriter("xlsx")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "EMA_20.csv", FileName("EMA(20)", 0, "csv"))
	assert.Equal(t, "MACD_12_26_9_2.json", FileName("MACD(12,26,9)", 2, "json"))
	assert.Equal(t, "SAR_0.02_0.20.parquet", FileName("SAR(0.02,0.20)", 0, "parquet"))
	assert.Equal(t, "series.csv", FileName("()", 0, "csv"))
}

func TestWriteDataset_CSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteDataset(CSVWriter{}, dir, "EMA(3)", 0, sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "EMA_3.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, []string{"t", "o", "h", "l", "c", "v", "valid"}, records[0])
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "0", "false"}, records[1])
	assert.Equal(t, []string{"60000", "1", "2", "0.5", "1.5", "10", "true"}, records[2])
}

func TestWriteDataset_JSON(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDataset(JSONWriter{}, dir, "ADX(14)", 1, sampleDataset())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []Row
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Equal(t, Rows(sampleDataset()), rows)
}

func TestWriteDataset_Parquet(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDataset(ParquetWriter{}, dir, "HMA(16)", 0, sampleDataset())
	require.NoError(t, err)

	rows, err := parquet.ReadFile[Row](path)
	require.NoError(t, err)
	assert.Equal(t, Rows(sampleDataset()), rows)
}
