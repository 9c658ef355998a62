package main

// 文件路径常量
const (
	configFile = "conf/config.yml"
	logDir     = "logs"
	i18nDir    = "i18n"
)

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 应用状态常量
type AppState int

const (
	HomeTab       AppState = iota // 首页行情列表
	UsrTab                        // 用户页
	DetailViewing                 // 详情弹窗
	ChartViewing                  // 布林线图表
)

// 标签页标识（对应配置中的 startup_tab）
const (
	tabHome = "home"
	tabUsr  = "usr"
)

// 图表最小尺寸
const (
	minChartWidth  = 40
	minChartHeight = 15
)
