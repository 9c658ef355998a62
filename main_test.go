package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	config := getDefaultConfig()
	config.Data = DataConfig{}
	config.Display.MaxLines = 3

	m, err := newModel(config)
	require.NoError(t, err)
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestNewModelStartupTab(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, HomeTab, m.state)
	assert.Equal(t, Chinese, m.language)
	assert.Equal(t, len(SampleCatalogue()), m.catalogue.Size())

	config := getDefaultConfig()
	config.Data = DataConfig{}
	config.System.StartupTab = tabUsr
	config.System.Language = "en"
	m2, err := newModel(config)
	require.NoError(t, err)
	assert.Equal(t, UsrTab, m2.state)
	assert.Equal(t, English, m2.language)
}

func TestHomeToggleFollowsCursor(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	checked, err := m.catalogue.IsChecked(0)
	require.NoError(t, err)
	assert.True(t, checked)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, runeKey('x'))
	assert.Equal(t, []int{0, 2}, m.catalogue.CheckedIndices())

	press(m, runeKey('x'))
	assert.Equal(t, []int{0}, m.catalogue.CheckedIndices())
}

func TestHomeScrollKeepsCheckedState(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeySpace})

	for i := 0; i < 5; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 5, m.homeCursor)
	start, end := m.visibleHomeRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	for i := 0; i < 10; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.homeCursor)
	assert.Equal(t, 0, m.homeScrollPos)

	// 滚动不影响按行索引保存的勾选状态
	assert.Equal(t, []int{0}, m.catalogue.CheckedIndices())
}

func TestHomeScrollStopsAtEnd(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 20; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, m.catalogue.Size()-1, m.homeCursor)
	_, end := m.visibleHomeRange()
	assert.Equal(t, m.catalogue.Size(), end)
}

func TestDetailOpenAndClose(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, DetailViewing, m.state)
	assert.Equal(t, Detail{Name: "辉煌科技", ID: "002296", Price: 18.39}, m.detail)
	assert.Contains(t, m.View(), "002296")

	press(m, runeKey('z'))
	assert.Equal(t, HomeTab, m.state)
}

func TestChartOpenAndClose(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('c'))

	require.Equal(t, ChartViewing, m.state)
	assert.Equal(t, "002170", m.chartCode)
	require.NoError(t, m.chartErr)

	n := len(SampleSeries().Observed)
	assert.Len(t, m.chartCommands, n+3*(n-1))

	// 终端尺寸未知时提示窗口太小
	assert.Contains(t, m.View(), m.getText("terminalTooSmall"))

	press(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.NotNil(t, m.createBollingerChart(m.termWidth, m.termHeight))
	assert.NotContains(t, m.View(), m.getText("terminalTooSmall"))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, HomeTab, m.state)
	assert.Nil(t, m.chartCommands)
}

func TestChartInvalidParamsShowsError(t *testing.T) {
	m := newTestModel(t)
	m.config.Chart.Weight = 0
	press(m, runeKey('c'))

	require.Equal(t, ChartViewing, m.state)
	assert.ErrorIs(t, m.chartErr, ErrInvalidInput)
	assert.Nil(t, m.createBollingerChart(100, 40))
	assert.Contains(t, m.View(), m.getText("loadError"))
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t)

	press(m, runeKey('2'))
	assert.Equal(t, UsrTab, m.state)
	press(m, runeKey('1'))
	assert.Equal(t, HomeTab, m.state)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, UsrTab, m.state)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, HomeTab, m.state)
}

func TestUsrTabShowsCheckedStocks(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace}, runeKey('2'))

	view := m.View()
	assert.Contains(t, view, "002296")
	assert.NotContains(t, view, "002170")
}

func TestUsrTabLanguageSwitch(t *testing.T) {
	m := newTestModel(t)
	press(m, runeKey('2'), runeKey('l'))
	assert.Equal(t, English, m.language)
	assert.Equal(t, English, activeLanguage)

	press(m, runeKey('l'))
	assert.Equal(t, Chinese, m.language)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestDebugLogsRecordedInDebugMode(t *testing.T) {
	m := newTestModel(t)
	m.debugMode = true
	press(m, tea.KeyMsg{Type: tea.KeySpace}, runeKey('2'))

	require.Len(t, m.debugLogs, 2)
	for _, line := range m.debugLogs {
		assert.True(t, strings.HasPrefix(line, "["), line)
		assert.Contains(t, line, m.getText("debug.action.prefix"))
	}

	m.debugMode = false
	press(m, runeKey('1'))
	assert.Len(t, m.debugLogs, 2)
}
