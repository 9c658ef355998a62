package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// key: i18n 键名（如 "log.feed.seriesLoaded"），同时作为日志标识便于过滤
// args: 格式化参数（替换 i18n 文本中的 %s, %d 等占位符）
// ============================================================================

func logDebug(key string, args ...any) {
	logWithKey(LogDebug, key, args...)
}

func logInfo(key string, args ...any) {
	logWithKey(LogInfo, key, args...)
}

func logWarn(key string, args ...any) {
	logWithKey(LogWarn, key, args...)
}

func logError(key string, args ...any) {
	logWithKey(LogError, key, args...)
}

func logWithKey(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := lookupText(activeLanguage, key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	globalLogger.Log(level, key, text)
}

// ============================================================================
// 直接消息（无 i18n key）
// ============================================================================

// logWarnDirect 直接记录 WARN 级别消息
func logWarnDirect(format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(LogWarn, "", fmt.Sprintf(format, args...))
}
