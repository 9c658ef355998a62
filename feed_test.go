package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const catalogueContent = "id\tname\tprice\tupdown\tturnover\tvalue\n" +
	"002170\t芭田股份\t13.28\t1.45%\t2.10%\t120.5\n" +
	"\n" +
	"600221\t海南航空\t4.21\t-0.47%\t0.80%\t530.1\n"

func TestParseCatalogue(t *testing.T) {
	items, err := parseCatalogue([]byte(catalogueContent))
	require.NoError(t, err)

	assert.Equal(t, []ListItem{
		{ID: "002170", Name: "芭田股份", Price: 13.28, ChangePercent: 1.45},
		{ID: "600221", Name: "海南航空", Price: 4.21, ChangePercent: -0.47},
	}, items)
}

func TestParseCatalogueGBK(t *testing.T) {
	encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(catalogueContent))
	require.NoError(t, err)

	items, err := parseCatalogue(encoded)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "芭田股份", items[0].Name)
	assert.Equal(t, "海南航空", items[1].Name)
}

func TestParseCatalogueWithoutHeader(t *testing.T) {
	items, err := parseCatalogue([]byte("601899\t紫金矿业\t3.77\t-1.05\n"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, -1.05, items[0].ChangePercent)
}

func TestParseCatalogueKeepsEmptyFields(t *testing.T) {
	items, err := parseCatalogue([]byte("\tA\t1\t1%\r\n600221\t\t4.21\t-0.47%\t\n"))
	require.NoError(t, err)
	assert.Equal(t, []ListItem{
		{ID: "", Name: "A", Price: 1, ChangePercent: 1},
		{ID: "600221", Name: "", Price: 4.21, ChangePercent: -0.47},
	}, items)
}

func TestNewModelFallsBackOnDuplicateFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_data.txt")
	content := "002170\t芭田股份\t13.28\t1.45%\n002170\t芭田股份\t13.30\t1.50%\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config := getDefaultConfig()
	config.Data = DataConfig{CatalogueFile: path}
	m, err := newModel(config)
	require.NoError(t, err)
	assert.Equal(t, len(SampleCatalogue()), m.catalogue.Size())
}

func TestParseCatalogueErrors(t *testing.T) {
	tests := []struct {
		input string
		desc  string
	}{
		{"002170\t芭田股份\t13.28\n", "字段不足"},
		{"002170\t芭田股份\tabc\t1.45%\n", "价格非法"},
		{"002170\t芭田股份\t13.28\tup%\n", "涨跌幅非法"},
	}

	for _, tt := range tests {
		_, err := parseCatalogue([]byte(tt.input))
		assert.Error(t, err, tt.desc)
	}
}

func TestLoadCatalogueFileFallback(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, SampleCatalogue(), loadCatalogueFile(""))
	assert.Equal(t, SampleCatalogue(), loadCatalogueFile(filepath.Join(dir, "missing.txt")))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("x\ty\n"), 0644))
	assert.Equal(t, SampleCatalogue(), loadCatalogueFile(bad))

	dup := filepath.Join(dir, "dup.txt")
	dupContent := "002170\t芭田股份\t13.28\t1.45%\n002170\t芭田股份\t13.30\t1.50%\n"
	require.NoError(t, os.WriteFile(dup, []byte(dupContent), 0644))
	assert.Equal(t, SampleCatalogue(), loadCatalogueFile(dup), "重复代码回退样例")

	emptyID := filepath.Join(dir, "empty_id.txt")
	require.NoError(t, os.WriteFile(emptyID, []byte("\t芭田股份\t13.28\t1.45%\n"), 0644))
	assert.Equal(t, SampleCatalogue(), loadCatalogueFile(emptyID), "空代码回退样例")

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte(catalogueContent), 0644))
	assert.Len(t, loadCatalogueFile(good), 2)
}

func TestParseSeries(t *testing.T) {
	content := "mean, high, low\n" +
		"current\t1\t2\t3\n" +
		"mean\t1.5\t2.5\t3.5\n" +
		"up\t2\t3\t4\n" +
		"down\t1\t1\t1\t\n"

	series, err := parseSeries([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, threePointSeries(), series)
}

func TestParseSeriesMissingRow(t *testing.T) {
	_, err := parseSeries([]byte("current\t1\t2\nmean\t1\t2\nup\t1\t2\n"))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParseSeriesBadValue(t *testing.T) {
	_, err := parseSeries([]byte("current\t1\tx\nmean\t1\t2\nup\t1\t2\ndown\t1\t2\n"))
	assert.Error(t, err)
}

func TestLoadSeriesForStock(t *testing.T) {
	dir := t.TempDir()
	content := "current\t1\t2\t3\nmean\t1.5\t2.5\t3.5\nup\t2\t3\t4\ndown\t1\t1\t1\n"
	require.NoError(t, os.WriteFile(seriesFilePath(dir, "002170"), []byte(content), 0644))

	assert.Equal(t, threePointSeries(), loadSeriesForStock(dir, "002170"))
	assert.Equal(t, SampleSeries(), loadSeriesForStock(dir, "600221"))
	assert.Equal(t, SampleSeries(), loadSeriesForStock("", "002170"))
}

func TestBundledSeriesFileMatchesSample(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("data", "boll_002170.txt"))
	if err != nil {
		t.Skip("bundled data file not present")
	}
	series, err := parseSeries(data)
	require.NoError(t, err)
	assert.Equal(t, SampleSeries(), series)
}
