package store

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// 持久化键名（对应浏览器 localStorage 的布局）
const (
	themeKey   = "theme"
	fontKey    = "font_size"
	festiveKey = "festive"
	tokenKey   = "token"

	themeDark  = "dark"
	themeLight = "light"
)

// fontSizeCycle 字号循环档位（百分比）
var fontSizeCycle = []float64{100, 112.5, 125}

// ToggleTheme 切换深浅色主题，持久化并提示新状态
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	dark := s.darkMode
	s.mu.Unlock()

	value := themeLight
	message := "已切换到浅色模式"
	if dark {
		value = themeDark
		message = "已切换到深色模式"
	}
	s.persist(themeKey, value)

	s.publish()
	s.ShowToast(message, SeverityInfo)
}

// CycleFontSize 循环切换字号档位（三档循环，3 次回到起点）
func (s *Store) CycleFontSize() {
	s.mu.Lock()
	next := fontSizeCycle[0]
	for i, size := range fontSizeCycle {
		if s.fontSize == size {
			next = fontSizeCycle[(i+1)%len(fontSizeCycle)]
			break
		}
	}
	s.fontSize = next
	s.mu.Unlock()

	s.persist(fontKey, strconv.FormatFloat(next, 'f', -1, 64))
	s.publish()
}

// ToggleFestive 切换节日装饰，持久化并提示新状态
func (s *Store) ToggleFestive() {
	s.mu.Lock()
	s.festive = !s.festive
	on := s.festive
	s.mu.Unlock()

	message := "节日装饰已关闭"
	if on {
		message = "节日装饰已开启"
	}
	s.persist(festiveKey, strconv.FormatBool(on))

	s.publish()
	s.ShowToast(message, SeverityInfo)
}

// persist 写入偏好，失败只记录日志不影响状态
func (s *Store) persist(key, value string) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.Set(key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to persist preference")
	}
}
