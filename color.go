package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ColorUtils 颜色工具类
type ColorUtils struct{}

// NewColorUtils 创建颜色工具实例
func NewColorUtils() *ColorUtils {
	return &ColorUtils{}
}

// ansiColorCodes 颜色名称 → ANSI 16 色编号（lipgloss 使用）
var ansiColorCodes = map[string]string{
	"black":   "0",
	"red":     "9",
	"green":   "10",
	"yellow":  "11",
	"blue":    "12",
	"magenta": "13",
	"cyan":    "14",
	"white":   "15",
}

// GetSupportedColors 获取go-pretty支持的颜色
func (c *ColorUtils) GetSupportedColors() map[string]text.Color {
	return map[string]text.Color{
		"black":   text.FgBlack,
		"red":     text.FgRed,
		"green":   text.FgGreen,
		"yellow":  text.FgYellow,
		"blue":    text.FgBlue,
		"magenta": text.FgMagenta,
		"cyan":    text.FgCyan,
		"white":   text.FgWhite,
	}
}

// GetColorFromConfigOrDefault 从配置获取颜色，如果无效则使用默认颜色
func (c *ColorUtils) GetColorFromConfigOrDefault(configColor, defaultColor string) string {
	if configColor == "" {
		return defaultColor
	}
	if _, exists := c.GetSupportedColors()[strings.ToLower(configColor)]; exists {
		return strings.ToLower(configColor)
	}
	return defaultColor
}

// LipglossColor 颜色名称转 lipgloss 颜色，未知名称返回白色
func (c *ColorUtils) LipglossColor(colorName string) lipgloss.Color {
	if code, exists := ansiColorCodes[strings.ToLower(colorName)]; exists {
		return lipgloss.Color(code)
	}
	return lipgloss.Color("15")
}

// bandStyles 由配置生成各序列的绘制样式（绘图面的样式映射）
type bandStyles struct {
	current lipgloss.Style
	bands   map[BandSeries]lipgloss.Style
}

func newBandStyles(colors BandColors) bandStyles {
	c := NewColorUtils()
	return bandStyles{
		current: lipgloss.NewStyle().Foreground(c.LipglossColor(colors.Current)),
		bands: map[BandSeries]lipgloss.Style{
			BandMean:  lipgloss.NewStyle().Foreground(c.LipglossColor(colors.Mean)),
			BandUpper: lipgloss.NewStyle().Foreground(c.LipglossColor(colors.Upper)),
			BandLower: lipgloss.NewStyle().Foreground(c.LipglossColor(colors.Lower)),
		},
	}
}

// styleFor 获取指定轨道样式
func (s bandStyles) styleFor(band BandSeries) lipgloss.Style {
	if style, exists := s.bands[band]; exists {
		return style
	}
	return lipgloss.NewStyle()
}
