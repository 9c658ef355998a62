package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 调试日志
// ============================================================================

// maxDebugLogs 调试日志保留条数
const maxDebugLogs = 200

// logUserAction 记录用户操作 - 支持 i18n key
// 调试模式下写入界面日志，同时写入文件日志
func (m *Model) logUserAction(actionKey string, args ...any) {
	action := fmt.Sprintf(m.getText(actionKey), args...)
	logDebug(actionKey, args...)

	if !m.debugMode {
		return
	}
	timestamp := time.Now().Format("15:04:05")
	m.debugLogs = append(m.debugLogs, fmt.Sprintf("[%s] %s %s", timestamp, m.getText("debug.action.prefix"), action))
	if len(m.debugLogs) > maxDebugLogs {
		m.debugLogs = m.debugLogs[len(m.debugLogs)-maxDebugLogs:]
	}
}

// renderDebugLogs 渲染最近 n 条调试日志
func (m *Model) renderDebugLogs(n int) string {
	logs := m.debugLogs
	if len(logs) > n {
		logs = logs[len(logs)-n:]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(strings.Join(logs, "\n"))
}
