package main

// ============================================================================
// 首页列表滚动控制
// 滚动只改变可见窗口，勾选状态按行索引保存，不受影响
// ============================================================================

// scrollHomeUp 光标上移，必要时上滚
func (m *Model) scrollHomeUp() {
	if m.homeCursor > 0 {
		m.homeCursor--
	}
	m.adjustHomeScroll()
}

// scrollHomeDown 光标下移，必要时下滚
func (m *Model) scrollHomeDown() {
	if m.catalogue != nil && m.homeCursor < m.catalogue.Size()-1 {
		m.homeCursor++
	}
	m.adjustHomeScroll()
}

// adjustHomeScroll 确保光标在可见范围内
func (m *Model) adjustHomeScroll() {
	maxLines := m.config.Display.MaxLines
	if maxLines <= 0 {
		maxLines = 10
	}

	if m.homeCursor < m.homeScrollPos {
		m.homeScrollPos = m.homeCursor
	}
	if m.homeCursor >= m.homeScrollPos+maxLines {
		m.homeScrollPos = m.homeCursor - maxLines + 1
	}
	if m.homeScrollPos < 0 {
		m.homeScrollPos = 0
	}
}

// visibleHomeRange 当前可见行范围 [start, end)
func (m *Model) visibleHomeRange() (int, int) {
	if m.catalogue == nil {
		return 0, 0
	}
	maxLines := m.config.Display.MaxLines
	if maxLines <= 0 {
		maxLines = 10
	}
	start := m.homeScrollPos
	end := start + maxLines
	if end > m.catalogue.Size() {
		end = m.catalogue.Size()
	}
	if start > end {
		start = end
	}
	return start, end
}
