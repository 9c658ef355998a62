package main

import "errors"

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrInvalidInput 输入数据不合法（序列长度不一致、参数非正数等）
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange 列表索引越界
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ============================================================================
// 布林线图表数据结构
// ============================================================================

// Series 布林线四条平行序列，同一索引代表同一时间点
type Series struct {
	Observed []float64 // 当前价格
	Mean     []float64 // 移动平均线
	Upper    []float64 // 上轨
	Lower    []float64 // 下轨
}

// RenderParams 绘制参数
type RenderParams struct {
	Step   float64 `yaml:"step"`   // 相邻索引的横向像素间距
	Offset float64 `yaml:"offset"` // 数值轴偏移
	Weight float64 `yaml:"weight"` // 数值缩放比例
}

// BandSeries 轨道序列标识（用于选择样式）
type BandSeries int

const (
	BandMean BandSeries = iota
	BandUpper
	BandLower
)

// CommandKind 绘制指令类型
type CommandKind int

const (
	CommandPoint CommandKind = iota
	CommandSegment
)

// DrawCommand 绘制指令：Point 使用 X/Y，Segment 使用 X0/Y0/X1/Y1/Band
type DrawCommand struct {
	Kind CommandKind

	X, Y float64

	X0, Y0 float64
	X1, Y1 float64
	Band   BandSeries
}

// ============================================================================
// 股票列表数据结构
// ============================================================================

// ListItem 列表中的一只股票
type ListItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// Detail 详情弹窗所需的只读投影
type Detail struct {
	Name  string
	ID    string
	Price float64
}

// Trend 涨跌分类
type Trend int

const (
	TrendNonPositive Trend = iota // 平盘或下跌
	TrendPositive                 // 上涨
)

// ============================================================================
// 配置结构
// ============================================================================

// Config 系统配置结构
type Config struct {
	System  SystemConfig  `yaml:"system"`  // 系统设置
	Display DisplayConfig `yaml:"display"` // 显示设置
	Chart   RenderParams  `yaml:"chart"`   // 图表参数
	Data    DataConfig    `yaml:"data"`    // 数据源设置
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language   string `yaml:"language"`    // 默认语言 "zh" 或 "en"
	StartupTab string `yaml:"startup_tab"` // 启动标签页 "home" 或 "usr"
	LogLevel   string `yaml:"log_level"`   // 日志级别 debug/info/warn/error
	DebugMode  bool   `yaml:"debug_mode"`  // 调试模式开关
}

// DisplayConfig 显示设置
type DisplayConfig struct {
	MaxLines   int        `yaml:"max_lines"`   // 列表每页最大显示行数
	TableStyle string     `yaml:"table_style"` // 表格样式 "light", "bold", "simple"
	BandColors BandColors `yaml:"band_colors"` // 布林线各序列颜色
}

// BandColors 布林线颜色（颜色名称）
type BandColors struct {
	Current string `yaml:"current"`
	Mean    string `yaml:"mean"`
	Upper   string `yaml:"upper"`
	Lower   string `yaml:"lower"`
}

// DataConfig 数据源设置
type DataConfig struct {
	CatalogueFile string `yaml:"catalogue_file"` // 行情列表文件（制表符分隔）
	SeriesDir     string `yaml:"series_dir"`     // 布林线数据目录（boll_<code>.txt）
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// ============================================================================
// 应用程序主模型
// ============================================================================

// Model 应用程序主模型
type Model struct {
	state         AppState
	previousState AppState // 进入详情/图表前所在的标签页
	language      Language
	config        Config
	message       string
	debugMode     bool
	debugLogs     []string // 调试日志（用户页底部显示）

	// 终端尺寸
	termWidth  int
	termHeight int

	// 首页列表
	catalogue     *Catalogue
	homeCursor    int // 当前选中行
	homeScrollPos int // 可见窗口首行

	// 详情弹窗
	detail Detail

	// 布林线图表
	chartCode     string
	chartName     string
	chartSeries   Series
	chartCommands []DrawCommand
	chartErr      error
}
