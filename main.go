package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	config := loadConfig(configFile)

	if err := InitLogger(logDir, parseLogLevel(config.System.LogLevel)); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	defer func() {
		if globalLogger != nil {
			globalLogger.Sync()
		}
	}()

	if err := loadI18nFiles(i18nDir); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	m, err := newModel(config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logInfo("log.app.start", m.catalogue.Size(), m.language)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logError("log.app.runFail", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logInfo("log.app.exit")
}

// newModel 根据配置创建主模型（列表数据在进入首页时读取一次）
func newModel(config Config) (*Model, error) {
	catalogue, err := NewCatalogue(loadCatalogueFile(config.Data.CatalogueFile))
	if err != nil {
		return nil, fmt.Errorf("build catalogue: %w", err)
	}

	m := &Model{
		state:     HomeTab,
		config:    config,
		catalogue: catalogue,
		debugMode: config.System.DebugMode,
	}
	if config.System.StartupTab == tabUsr {
		m.state = UsrTab
	}
	m.previousState = m.state
	m.setLanguage(Language(config.System.Language))
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case HomeTab:
			return m.handleHomeTab(msg)
		case UsrTab:
			return m.handleUsrTab(msg)
		case DetailViewing:
			return m.handleDetailViewing(msg)
		case ChartViewing:
			return m.handleChartViewing(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case HomeTab:
		return m.renderTabBar() + "\n\n" + m.viewHomeTab()
	case UsrTab:
		return m.renderTabBar() + "\n\n" + m.viewUsrTab()
	case DetailViewing:
		return m.viewDetail()
	case ChartViewing:
		return m.viewBollingerChart(m.termWidth, m.termHeight)
	}
	return ""
}

// ============================================================================
// 标签页切换
// ============================================================================

// handleTabKeys 处理标签页公共按键，返回 true 表示已处理
func (m *Model) handleTabKeys(key string) (bool, tea.Cmd) {
	switch key {
	case "1":
		m.switchTab(HomeTab)
	case "2":
		m.switchTab(UsrTab)
	case "tab":
		if m.state == HomeTab {
			m.switchTab(UsrTab)
		} else {
			m.switchTab(HomeTab)
		}
	case "q", "esc":
		return true, tea.Quit
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) switchTab(state AppState) {
	if m.state == state {
		return
	}
	m.state = state
	m.message = ""
	m.logUserAction("debug.action.switchTab", m.tabName(state))
}

func (m *Model) tabName(state AppState) string {
	if state == UsrTab {
		return m.getText("tab.usr")
	}
	return m.getText("tab.home")
}

// renderTabBar 顶部标签栏
func (m *Model) renderTabBar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("14")).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 1)

	tabs := []struct {
		state AppState
		label string
	}{
		{HomeTab, "1 " + m.getText("tab.home")},
		{UsrTab, "2 " + m.getText("tab.usr")},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.state == m.state {
			parts = append(parts, active.Render(t.label))
		} else {
			parts = append(parts, inactive.Render(t.label))
		}
	}
	return strings.Join(parts, " ")
}
