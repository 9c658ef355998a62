package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ============================================================================
// 首页行情列表
// ============================================================================

// handleHomeTab 处理首页按键
func (m *Model) handleHomeTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if handled, cmd := m.handleTabKeys(key); handled {
		return m, cmd
	}

	switch key {
	case "up", "k", "w":
		m.scrollHomeUp()
	case "down", "j", "s":
		m.scrollHomeDown()
	case " ", "space", "x":
		m.toggleRow(m.homeCursor)
	case "enter":
		m.openDetail(m.homeCursor)
	case "c":
		m.openChart(m.homeCursor)
	}
	return m, nil
}

// toggleRow 切换勾选状态
func (m *Model) toggleRow(index int) {
	if err := m.catalogue.Toggle(index); err != nil {
		m.reportError(err)
		return
	}
	checked, _ := m.catalogue.IsChecked(index)
	m.message = ""
	m.logUserAction("debug.action.toggle", index, checked)
}

// openDetail 打开详情弹窗
func (m *Model) openDetail(index int) {
	detail, err := m.catalogue.Detail(index)
	if err != nil {
		m.reportError(err)
		return
	}
	m.detail = detail
	m.previousState = m.state
	m.state = DetailViewing
	m.logUserAction("debug.action.detail", detail.ID)
}

// reportError 将错误显示为本地化消息并记录日志
func (m *Model) reportError(err error) {
	m.message = fmt.Sprintf("%s: %v", m.getText("error"), err)
	logWarn("log.ui.actionFailed", err)
}

// tableStyle 根据配置选择表格样式
func (m *Model) tableStyle() table.Style {
	switch m.config.Display.TableStyle {
	case "bold":
		return table.StyleBold
	case "simple":
		return table.StyleDefault
	case "rounded":
		return table.StyleRounded
	default:
		return table.StyleLight
	}
}

// viewHomeTab 渲染首页
func (m *Model) viewHomeTab() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("=== " + m.getText("home.title") + " ==="))
	b.WriteString("\n\n")

	if m.catalogue.Size() == 0 {
		b.WriteString(m.getText("home.empty"))
		b.WriteString("\n")
		return b.String()
	}

	t := table.NewWriter()
	t.SetStyle(m.tableStyle())
	t.AppendHeader(table.Row{
		"",
		m.getText("col.selected"),
		m.getText("col.code"),
		m.getText("col.name"),
		m.getText("col.price"),
		m.getText("col.change"),
	})

	start, end := m.visibleHomeRange()
	for i := start; i < end; i++ {
		t.AppendRow(m.homeRow(i))
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("\n%s %d-%d / %d\n", m.getText("home.showing"), start+1, end, m.catalogue.Size()))
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.getText("home.help")))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n" + m.message + "\n")
	}
	return b.String()
}

// homeRow 生成一行表格数据
func (m *Model) homeRow(index int) table.Row {
	item, err := m.catalogue.ItemAt(index)
	if err != nil {
		return table.Row{"", "", "", "", "", ""}
	}
	checked, _ := m.catalogue.IsChecked(index)

	cursor := ""
	if index == m.homeCursor {
		cursor = "►"
	}
	box := "[ ]"
	if checked {
		box = "[x]"
	}

	return table.Row{
		cursor,
		box,
		item.ID,
		item.Name,
		formatPrice(item.Price),
		formatChangePercent(item.ChangePercent, m.language),
	}
}

// ============================================================================
// 详情弹窗
// ============================================================================

// handleDetailViewing 任意键关闭详情
func (m *Model) handleDetailViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = m.previousState
	return m, nil
}

// viewDetail 渲染详情弹窗
func (m *Model) viewDetail() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render(m.detail.Name)
	body := fmt.Sprintf("%s: %s  %s: %s",
		m.getText("detail.code"), m.detail.ID,
		m.getText("detail.price"), formatPrice(m.detail.Price))
	footer := lipgloss.NewStyle().Faint(true).Render("[" + m.getText("detail.ok") + "]")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("14")).
		Padding(1, 2).
		Render(title + "\n\n" + body + "\n\n" + footer)
	return box + "\n"
}
