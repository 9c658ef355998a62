package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:   "zh",    // 默认中文
			StartupTab: tabHome, // 默认进入首页
			LogLevel:   "info",
			DebugMode:  false,
		},
		Display: DisplayConfig{
			MaxLines:   10,      // 默认每页显示10行
			TableStyle: "light", // 轻量表格样式
			BandColors: BandColors{
				Current: "cyan",
				Mean:    "red",
				Upper:   "green",
				Lower:   "blue",
			},
		},
		Chart: DefaultRenderParams(),
		Data: DataConfig{
			CatalogueFile: "data/current_data.txt",
			SeriesDir:     "data",
		},
	}
}

// loadConfig 加载配置文件
// 文件不存在时写出默认配置；格式错误时使用默认配置
func loadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		config := getDefaultConfig()
		if err := saveConfig(path, config); err != nil {
			logWarnDirect("Failed to write default config %s: %v", path, err)
		}
		return config
	}

	config := getDefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		logWarnDirect("Failed to parse config %s: %v", path, err)
		return getDefaultConfig()
	}

	normalizeConfig(&config)
	return config
}

// normalizeConfig 校验配置的合理性，非法值回退到默认值
func normalizeConfig(config *Config) {
	defaults := getDefaultConfig()

	if config.System.Language != string(Chinese) && config.System.Language != string(English) {
		config.System.Language = defaults.System.Language
	}
	if config.System.StartupTab != tabHome && config.System.StartupTab != tabUsr {
		config.System.StartupTab = defaults.System.StartupTab
	}

	if config.Display.MaxLines <= 0 || config.Display.MaxLines > 50 {
		config.Display.MaxLines = defaults.Display.MaxLines
	}

	colorUtils := NewColorUtils()
	bc := &config.Display.BandColors
	bc.Current = colorUtils.GetColorFromConfigOrDefault(bc.Current, defaults.Display.BandColors.Current)
	bc.Mean = colorUtils.GetColorFromConfigOrDefault(bc.Mean, defaults.Display.BandColors.Mean)
	bc.Upper = colorUtils.GetColorFromConfigOrDefault(bc.Upper, defaults.Display.BandColors.Upper)
	bc.Lower = colorUtils.GetColorFromConfigOrDefault(bc.Lower, defaults.Display.BandColors.Lower)

	// 图表参数非正数、NaN 或无穷时整体回退
	c := config.Chart
	if !(c.Step > 0) || !(c.Weight > 0) || !isFinite(c.Step) || !isFinite(c.Weight) || !isFinite(c.Offset) {
		logWarnDirect("Invalid chart params step=%v weight=%v, using defaults", config.Chart.Step, config.Chart.Weight)
		config.Chart = defaults.Chart
	}
}

// saveConfig 保存配置文件
func saveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
