package store

import "plum/internal/model"

// 播放器三态机：空闲 → 播放 → 暂停
// 不变量：没有歌曲时 isPlaying 必须为 false

// PlaySong 加载歌曲并立即播放（任意状态可达）
func (s *Store) PlaySong(song model.Song) {
	s.mu.Lock()
	s.currentSong = &song
	s.isPlaying = true
	s.mu.Unlock()

	s.publish()
}

// TogglePlay 在播放/暂停之间切换，空闲状态下是 no-op
func (s *Store) TogglePlay() {
	s.mu.Lock()
	if s.currentSong == nil {
		s.mu.Unlock()
		return
	}
	s.isPlaying = !s.isPlaying
	s.mu.Unlock()

	s.publish()
}

// OpenFullPlayer 展开全屏播放器，空闲状态下是 no-op
func (s *Store) OpenFullPlayer() {
	s.mu.Lock()
	if s.currentSong == nil {
		s.mu.Unlock()
		return
	}
	s.fullPlayerOpen = true
	s.mu.Unlock()

	s.publish()
}

// CollapseFullPlayer 收起全屏播放器，不影响播放状态
func (s *Store) CollapseFullPlayer() {
	s.mu.Lock()
	s.fullPlayerOpen = false
	s.mu.Unlock()

	s.publish()
}

// ClosePlayer 回到空闲状态并强制关闭全屏视图
func (s *Store) ClosePlayer() {
	s.mu.Lock()
	s.currentSong = nil
	s.isPlaying = false
	s.fullPlayerOpen = false
	s.mu.Unlock()

	s.publish()
}
