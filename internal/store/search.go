package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"plum/internal/model"
)

// Search 防抖搜索入口
// 输入停止一个防抖窗口后才真正发起查询，只有最后一次输入生效
func (s *Store) Search(keyword string) {
	s.debouncer.Call(keyword)
}

// OpenSearchModal 打开搜索弹窗
func (s *Store) OpenSearchModal() {
	s.mu.Lock()
	s.searchModalOpen = true
	s.mu.Unlock()

	s.publish()
}

// CloseSearchModal 关闭搜索弹窗并清空结果
func (s *Store) CloseSearchModal() {
	s.mu.Lock()
	s.searchModalOpen = false
	s.searchResults = nil
	s.searching = false
	s.mu.Unlock()

	s.publish()
}

// doSearch 实际发起查询
// 每次发起都分配递增序号，响应返回时序号已过期则直接丢弃，
// 保证乱序返回时界面只呈现最后一次查询的结果
func (s *Store) doSearch(keyword string) {
	s.mu.Lock()
	s.searchSeq++
	seq := s.searchSeq
	s.searching = true
	s.mu.Unlock()
	s.publish()

	res, err := s.articles.List(context.Background(), model.ArticleQuery{Query: keyword})

	s.mu.Lock()
	if seq != s.searchSeq {
		// 过期响应
		s.mu.Unlock()
		return
	}
	s.searching = false
	if err != nil {
		s.searchResults = nil
	} else {
		s.searchResults = res.Items
	}
	s.mu.Unlock()

	s.publish()
	if err != nil {
		log.Warn().Err(err).Str("keyword", keyword).Msg("search failed")
	}
}
