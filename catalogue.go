package main

import "fmt"

// ============================================================================
// 行情列表模型
// 股票数据不可变；勾选状态按逻辑行索引单独存放，与视图滚动无关
// ============================================================================

// Catalogue 股票列表及每行勾选状态
type Catalogue struct {
	items   []ListItem
	checked []bool
}

// NewCatalogue 创建列表（复制输入），ID 不能为空或重复
func NewCatalogue(items []ListItem) (*Catalogue, error) {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("item %d has empty id: %w", i, ErrInvalidInput)
		}
		if prev, exists := seen[item.ID]; exists {
			return nil, fmt.Errorf("duplicate id %q at rows %d and %d: %w", item.ID, prev, i, ErrInvalidInput)
		}
		seen[item.ID] = i
	}

	c := &Catalogue{
		items:   make([]ListItem, len(items)),
		checked: make([]bool, len(items)),
	}
	copy(c.items, items)
	return c, nil
}

// Size 列表长度
func (c *Catalogue) Size() int {
	return len(c.items)
}

// ItemAt 获取指定行
func (c *Catalogue) ItemAt(index int) (ListItem, error) {
	if err := c.checkIndex(index); err != nil {
		return ListItem{}, err
	}
	return c.items[index], nil
}

// Toggle 切换指定行的勾选状态
func (c *Catalogue) Toggle(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.checked[index] = !c.checked[index]
	logDebug("log.catalogue.toggle", c.items[index].ID, c.checked[index])
	return nil
}

// IsChecked 查询指定行是否勾选
func (c *Catalogue) IsChecked(index int) (bool, error) {
	if err := c.checkIndex(index); err != nil {
		return false, err
	}
	return c.checked[index], nil
}

// Detail 详情弹窗数据
func (c *Catalogue) Detail(index int) (Detail, error) {
	if err := c.checkIndex(index); err != nil {
		return Detail{}, err
	}
	item := c.items[index]
	return Detail{Name: item.Name, ID: item.ID, Price: item.Price}, nil
}

// TrendAt 指定行的涨跌分类
func (c *Catalogue) TrendAt(index int) (Trend, error) {
	if err := c.checkIndex(index); err != nil {
		return TrendNonPositive, err
	}
	return ClassifyChange(c.items[index].ChangePercent), nil
}

// CheckedIndices 已勾选的行索引（升序）
func (c *Catalogue) CheckedIndices() []int {
	indices := make([]int, 0)
	for i, checked := range c.checked {
		if checked {
			indices = append(indices, i)
		}
	}
	return indices
}

func (c *Catalogue) checkIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("row %d not in [0, %d): %w", index, len(c.items), ErrIndexOutOfRange)
	}
	return nil
}

// ClassifyChange 涨跌幅大于 0 为上涨，0 和负数均视为非上涨
func ClassifyChange(changePercent float64) Trend {
	if changePercent > 0 {
		return TrendPositive
	}
	return TrendNonPositive
}
