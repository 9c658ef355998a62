package main

import (
	"fmt"
	"math"
)

// ============================================================================
// 布林线坐标映射
// 坐标约定：索引对应横轴 x = i*Step，数值对应纵轴 y = v*Weight + Offset
// ============================================================================

// Render 将布林线序列映射为绘制指令
// 输出 N 个点（当前价格）以及每条轨道 N-1 条线段
// 顺序：对 i = 0..N-2 依次输出 Point(i)、均线/上轨/下轨线段 i→i+1，最后输出 Point(N-1)
func Render(series Series, params RenderParams) ([]DrawCommand, error) {
	n, err := validateRender(series, params)
	if err != nil {
		return nil, err
	}

	cmds := make([]DrawCommand, 0, n+3*(n-1))
	for i := 0; i < n-1; i++ {
		cmds = append(cmds, pointCommand(i, series.Observed[i], params))
		cmds = append(cmds,
			segmentCommand(i, series.Mean, BandMean, params),
			segmentCommand(i, series.Upper, BandUpper, params),
			segmentCommand(i, series.Lower, BandLower, params),
		)
	}
	cmds = append(cmds, pointCommand(n-1, series.Observed[n-1], params))

	logDebug("log.chart.rendered", n, len(cmds))
	return cmds, nil
}

// validateRender 检查输入合法性，返回序列长度
func validateRender(series Series, params RenderParams) (int, error) {
	n := len(series.Observed)
	if len(series.Mean) != n || len(series.Upper) != n || len(series.Lower) != n {
		return 0, fmt.Errorf("series length mismatch (current=%d mean=%d upper=%d lower=%d): %w",
			n, len(series.Mean), len(series.Upper), len(series.Lower), ErrInvalidInput)
	}
	if n < 2 {
		return 0, fmt.Errorf("need at least 2 points, got %d: %w", n, ErrInvalidInput)
	}
	if !(params.Step > 0) || math.IsInf(params.Step, 0) {
		return 0, fmt.Errorf("step must be positive, got %v: %w", params.Step, ErrInvalidInput)
	}
	if !(params.Weight > 0) || math.IsInf(params.Weight, 0) {
		return 0, fmt.Errorf("weight must be positive, got %v: %w", params.Weight, ErrInvalidInput)
	}
	if !isFinite(params.Offset) {
		return 0, fmt.Errorf("offset must be finite, got %v: %w", params.Offset, ErrInvalidInput)
	}

	for name, values := range map[string][]float64{
		"current": series.Observed,
		"mean":    series.Mean,
		"upper":   series.Upper,
		"lower":   series.Lower,
	} {
		for i, v := range values {
			if !isFinite(v) {
				return 0, fmt.Errorf("%s[%d] is not a finite number: %w", name, i, ErrInvalidInput)
			}
		}
	}
	return n, nil
}

// mapPoint 索引和数值 → 屏幕坐标
func mapPoint(index int, value float64, params RenderParams) (float64, float64) {
	return float64(index) * params.Step, value*params.Weight + params.Offset
}

func pointCommand(index int, value float64, params RenderParams) DrawCommand {
	x, y := mapPoint(index, value, params)
	return DrawCommand{Kind: CommandPoint, X: x, Y: y}
}

func segmentCommand(index int, values []float64, band BandSeries, params RenderParams) DrawCommand {
	x0, y0 := mapPoint(index, values[index], params)
	x1, y1 := mapPoint(index+1, values[index+1], params)
	return DrawCommand{Kind: CommandSegment, X0: x0, Y0: y0, X1: x1, Y1: y1, Band: band}
}

// Bounds 计算绘制指令的坐标范围，供绘图面确定视口
// 空输入返回全零
func Bounds(cmds []DrawCommand) (minX, maxX, minY, maxY float64) {
	if len(cmds) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	extend := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for _, c := range cmds {
		switch c.Kind {
		case CommandPoint:
			extend(c.X, c.Y)
		case CommandSegment:
			extend(c.X0, c.Y0)
			extend(c.X1, c.Y1)
		}
	}
	return minX, maxX, minY, maxY
}

// CountCommands 统计点和线段数量
func CountCommands(cmds []DrawCommand) (points int, segments map[BandSeries]int) {
	segments = make(map[BandSeries]int, 3)
	for _, c := range cmds {
		if c.Kind == CommandPoint {
			points++
		} else {
			segments[c.Band]++
		}
	}
	return points, segments
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// String 轨道名称（日志使用）
func (b BandSeries) String() string {
	switch b {
	case BandMean:
		return "mean"
	case BandUpper:
		return "upper"
	case BandLower:
		return "lower"
	}
	return "unknown"
}
