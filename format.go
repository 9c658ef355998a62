package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ============================================================================
// 涨跌格式化 - 支持多语言颜色方案
// 中文：红涨绿跌 | 英文：绿涨红跌
// ============================================================================

// trendColor 根据涨跌分类和语言选择颜色
func trendColor(trend Trend, lang Language) text.Color {
	up, down := text.FgRed, text.FgGreen
	if lang == English {
		up, down = text.FgGreen, text.FgRed
	}
	if trend == TrendPositive {
		return up
	}
	return down
}

// formatChangePercent 格式化涨跌幅（带颜色）
func formatChangePercent(changePercent float64, lang Language) string {
	return trendColor(ClassifyChange(changePercent), lang).Sprint(formatChangePercentPlain(changePercent))
}

// formatChangePercentPlain 格式化涨跌幅（无颜色），正数带 + 号
func formatChangePercentPlain(changePercent float64) string {
	if changePercent > 0 {
		return fmt.Sprintf("+%.2f%%", changePercent)
	}
	return fmt.Sprintf("%.2f%%", changePercent)
}

// formatPrice 格式化价格
func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
