package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ============================================================================
// 行情列表数据文件
// 格式：首行表头 id\tname\tprice\tupdown...，之后每行一只股票，涨跌幅带 % 后缀
// ============================================================================

// loadCatalogueFile 读取行情列表文件，文件不存在、无数据或内容非法时返回内置样例
func loadCatalogueFile(path string) []ListItem {
	if path == "" {
		return SampleCatalogue()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logDebug("log.feed.catalogueMissing", path)
		return SampleCatalogue()
	}

	items, err := parseCatalogue(data)
	if err != nil {
		logWarn("log.feed.catalogueParseFail", path, err)
		return SampleCatalogue()
	}
	if len(items) == 0 {
		logWarn("log.feed.catalogueEmpty", path)
		return SampleCatalogue()
	}
	// 空代码或重复代码无法建立列表，同样回退
	if _, err := NewCatalogue(items); err != nil {
		logWarn("log.feed.catalogueInvalid", path, err)
		return SampleCatalogue()
	}

	logInfo("log.feed.catalogueLoaded", path, len(items))
	return items
}

// parseCatalogue 解析行情列表内容，非 UTF-8 内容按 GBK 解码
func parseCatalogue(data []byte) ([]ListItem, error) {
	content, err := decodeFeed(data)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0)
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		// 先按制表符切分再逐字段去空白，保留空字段的位置
		fields := strings.Split(line, "\t")
		// 表头行
		if lineNo == 1 && strings.EqualFold(strings.TrimSpace(fields[0]), "id") {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: expected at least 4 fields, got %d", lineNo, len(fields))
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price: %w", lineNo, err)
		}
		change, err := parsePercent(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad change: %w", lineNo, err)
		}

		items = append(items, ListItem{
			ID:            strings.TrimSpace(fields[0]),
			Name:          strings.TrimSpace(fields[1]),
			Price:         price,
			ChangePercent: change,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return items, nil
}

// parsePercent 解析 "1.45%" 或 "1.45"
func parsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	return strconv.ParseFloat(s, 64)
}

// decodeFeed 合法 UTF-8 原样返回，否则按 GBK 解码
func decodeFeed(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	content, err := gbkToUtf8(data)
	if err != nil {
		return "", fmt.Errorf("decode gbk: %w", err)
	}
	return content, nil
}

func gbkToUtf8(data []byte) (string, error) {
	reader := transform.NewReader(strings.NewReader(string(data)), simplifiedchinese.GBK.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(utf8Data), nil
}

// ============================================================================
// 布林线数据文件
// 格式：boll_<code>.txt，首行为说明，之后四行 current/mean/up/down，数值以制表符分隔
// ============================================================================

// seriesFilePath 布林线数据文件路径
func seriesFilePath(dir, code string) string {
	return filepath.Join(dir, fmt.Sprintf("boll_%s.txt", code))
}

// loadSeriesForStock 读取指定股票的布林线数据，找不到时返回内置样例
func loadSeriesForStock(dir, code string) Series {
	if dir == "" {
		return SampleSeries()
	}

	path := seriesFilePath(dir, code)
	data, err := os.ReadFile(path)
	if err != nil {
		logDebug("log.feed.seriesMissing", code, path)
		return SampleSeries()
	}

	series, err := parseSeries(data)
	if err != nil {
		logWarn("log.feed.seriesParseFail", path, err)
		return SampleSeries()
	}

	logInfo("log.feed.seriesLoaded", code, len(series.Observed))
	return series
}

// parseSeries 解析布林线数据内容
func parseSeries(data []byte) (Series, error) {
	var series Series
	found := make(map[string]bool, 4)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		label := strings.ToLower(strings.TrimSpace(fields[0]))

		var target *[]float64
		switch label {
		case "current":
			target = &series.Observed
		case "mean":
			target = &series.Mean
		case "up":
			target = &series.Upper
		case "down":
			target = &series.Lower
		default:
			// 说明行或空行
			continue
		}

		values := make([]float64, 0, len(fields)-1)
		for _, f := range fields[1:] {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Series{}, fmt.Errorf("line %d (%s): %w", lineNo, label, err)
			}
			values = append(values, v)
		}
		*target = values
		found[label] = true
	}
	if err := scanner.Err(); err != nil {
		return Series{}, fmt.Errorf("read series: %w", err)
	}

	for _, label := range []string{"current", "mean", "up", "down"} {
		if !found[label] {
			return Series{}, fmt.Errorf("missing %q row: %w", label, ErrInvalidInput)
		}
	}
	return series, nil
}
