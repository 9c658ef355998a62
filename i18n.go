package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// texts i18n 配置 - 存储各语言的文本映射
var texts = map[Language]TextMap{}

// activeLanguage 当前界面语言（日志文本也使用该语言）
var activeLanguage = English

// loadI18nFiles 从目录加载 zh.json 和 en.json
func loadI18nFiles(dir string) error {
	loaded := make(map[Language]TextMap)

	for _, lang := range []Language{Chinese, English} {
		path := filepath.Join(dir, string(lang)+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Warning: Failed to read %s: %v\n", path, err)
			continue
		}
		var m TextMap
		if err := json.Unmarshal(data, &m); err != nil {
			fmt.Printf("Warning: Failed to parse %s: %v\n", path, err)
			continue
		}
		loaded[lang] = m
	}

	if len(loaded) == 0 {
		return errors.New("no i18n files could be loaded, please ensure i18n/zh.json and i18n/en.json exist")
	}
	texts = loaded
	return nil
}

// lookupText 按 当前语言 → 英文 → key 本身 的顺序查找文本
func lookupText(lang Language, key string) string {
	if text, exists := texts[lang][key]; exists {
		return text
	}
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key
}

// getText 获取本地化文本的辅助函数
func (m *Model) getText(key string) string {
	return lookupText(m.language, key)
}

// setLanguage 切换界面语言
func (m *Model) setLanguage(lang Language) {
	if lang != Chinese && lang != English {
		lang = English
	}
	m.language = lang
	activeLanguage = lang
}
