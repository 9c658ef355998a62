package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 布林线图表：打开/关闭
// ============================================================================

// openChart 打开指定行股票的布林线图表（数据在进入时读取一次）
func (m *Model) openChart(index int) {
	item, err := m.catalogue.ItemAt(index)
	if err != nil {
		m.reportError(err)
		return
	}

	m.chartCode = item.ID
	m.chartName = item.Name
	m.chartSeries = loadSeriesForStock(m.config.Data.SeriesDir, item.ID)
	m.chartCommands, m.chartErr = Render(m.chartSeries, m.config.Chart)
	if m.chartErr != nil {
		logWarn("log.chart.renderFail", item.ID, m.chartErr)
	}

	m.previousState = m.state
	m.state = ChartViewing
	m.logUserAction("debug.action.chart", item.ID)
}

// handleChartViewing 处理图表页按键
func (m *Model) handleChartViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = m.previousState
		m.chartCommands = nil
		m.chartErr = nil
	}
	return m, nil
}

// ============================================================================
// 绘图面：将绘制指令画到 ntcharts 画布上
// ============================================================================

// createBollingerChart 按终端尺寸创建图表，尺寸不足或无指令时返回 nil
func (m *Model) createBollingerChart(termWidth, termHeight int) *linechart.Model {
	if len(m.chartCommands) == 0 {
		return nil
	}
	if termWidth < minChartWidth || termHeight < minChartHeight {
		return nil
	}

	chartWidth := termWidth - 4
	if chartWidth < minChartWidth {
		chartWidth = minChartWidth
	}
	chartHeight := termHeight - 10
	if chartHeight < minChartHeight {
		chartHeight = minChartHeight
	}

	minX, maxX, minY, maxY := Bounds(m.chartCommands)
	margin := (maxY - minY) * 0.05
	if margin <= 0 {
		margin = 1
	}
	logDebug("log.chart.dimensions", chartWidth, chartHeight, minX, maxX, minY, maxY)

	params := m.config.Chart
	// 轴标签显示原始价格和索引，而非映射后的坐标
	yLabelFormatter := func(index int, value float64) string {
		return fmt.Sprintf("%.2f", (value-params.Offset)/params.Weight)
	}
	xLabelFormatter := func(index int, value float64) string {
		return fmt.Sprintf("%d", int(math.Round(value/params.Step)))
	}

	styles := newBandStyles(m.config.Display.BandColors)
	lc := linechart.New(chartWidth, chartHeight,
		minX, maxX,
		minY-margin, maxY+margin,
		linechart.WithXYSteps(6, 5),
		linechart.WithXLabelFormatter(xLabelFormatter),
		linechart.WithYLabelFormatter(yLabelFormatter),
		linechart.WithStyles(lipgloss.Style{}, lipgloss.Style{}, styles.current),
	)

	paintCommands(&lc, m.chartCommands, styles)
	lc.DrawXYAxisAndLabel()
	return &lc
}

// paintCommands 先画线段再画点，保证价格点不被线段覆盖
func paintCommands(lc *linechart.Model, cmds []DrawCommand, styles bandStyles) {
	for _, c := range cmds {
		if c.Kind != CommandSegment {
			continue
		}
		p1 := canvas.Float64Point{X: c.X0, Y: c.Y0}
		p2 := canvas.Float64Point{X: c.X1, Y: c.Y1}
		lc.DrawBrailleLineWithStyle(p1, p2, styles.styleFor(c.Band))
	}
	for _, c := range cmds {
		if c.Kind != CommandPoint {
			continue
		}
		lc.DrawRuneWithStyle(canvas.Float64Point{X: c.X, Y: c.Y}, '•', styles.current)
	}
}

// ============================================================================
// 图表视图渲染
// ============================================================================

// viewBollingerChart 渲染布林线图表页
func (m *Model) viewBollingerChart(termWidth, termHeight int) string {
	var b strings.Builder
	back := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s] %s", "ESC/Q", m.getText("back")))

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render(fmt.Sprintf("📈 %s - %s (%s)", m.getText("chart.title"), m.chartCode, m.chartName)))
	b.WriteString("\n\n")

	if m.chartErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("%s: %s", m.getText("loadError"), m.chartErr.Error())))
		b.WriteString("\n\n" + back)
		return b.String()
	}

	chartModel := m.createBollingerChart(termWidth, termHeight)
	if chartModel == nil {
		b.WriteString(m.getText("terminalTooSmall"))
		b.WriteString("\n\n")
		b.WriteString(m.getText("pleaseResize"))
		b.WriteString("\n\n" + back)
		return b.String()
	}

	b.WriteString(m.renderChartLegend())
	b.WriteString("\n\n")
	b.WriteString(chartModel.View())
	b.WriteString("\n\n" + back)
	return b.String()
}

// renderChartLegend 图例
func (m *Model) renderChartLegend() string {
	styles := newBandStyles(m.config.Display.BandColors)
	parts := []string{
		styles.current.Render("• " + m.getText("chart.current")),
		styles.styleFor(BandMean).Render("— " + m.getText("chart.mean")),
		styles.styleFor(BandUpper).Render("— " + m.getText("chart.upper")),
		styles.styleFor(BandLower).Render("— " + m.getText("chart.lower")),
	}
	return strings.Join(parts, "   ")
}
