package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 用户页：已勾选股票、语言切换
// ============================================================================

// handleUsrTab 处理用户页按键
func (m *Model) handleUsrTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if handled, cmd := m.handleTabKeys(key); handled {
		return m, cmd
	}

	switch key {
	case "l":
		if m.language == Chinese {
			m.setLanguage(English)
		} else {
			m.setLanguage(Chinese)
		}
		m.logUserAction("debug.action.language", m.language)
	case "d":
		m.debugMode = !m.debugMode
	}
	return m, nil
}

// viewUsrTab 渲染用户页
func (m *Model) viewUsrTab() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("=== " + m.getText("usr.title") + " ==="))
	b.WriteString("\n\n")

	indices := m.catalogue.CheckedIndices()
	if len(indices) == 0 {
		b.WriteString(m.getText("usr.noSelection"))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("%s (%d):\n", m.getText("usr.selected"), len(indices)))
		for _, i := range indices {
			detail, err := m.catalogue.Detail(i)
			if err != nil {
				continue
			}
			trend, _ := m.catalogue.TrendAt(i)
			item, _ := m.catalogue.ItemAt(i)
			b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
				detail.ID, detail.Name, formatPrice(detail.Price),
				trendColor(trend, m.language).Sprint(formatChangePercentPlain(item.ChangePercent))))
		}
	}

	debugStatus := m.getText("off")
	if m.debugMode {
		debugStatus = m.getText("on")
	}
	b.WriteString(fmt.Sprintf("\n%s: %s\n", m.getText("usr.language"), m.getText("language.name")))
	b.WriteString(fmt.Sprintf("%s: %s\n", m.getText("usr.debug"), debugStatus))
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.getText("usr.help")))
	b.WriteString("\n")

	if m.debugMode && len(m.debugLogs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderDebugLogs(8))
	}
	return b.String()
}
