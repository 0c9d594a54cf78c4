// Package store 应用全局状态容器
// 会话、播放器、界面偏好、通知队列的唯一持有者；
// 进程启动时构造一次并注入消费方，消费方通过 Subscribe 感知变更
package store

import (
	"strconv"
	"sync"
	"time"

	"plum/internal/api"
	"plum/internal/model"
	"plum/internal/pkg/kvstore"
	"plum/internal/pkg/timing"
)

const (
	defaultToastTTL       = 3 * time.Second
	defaultSearchDebounce = 300 * time.Millisecond
)

// Deps Store 的外部依赖
type Deps struct {
	Prefs    kvstore.Store // 偏好与会话令牌持久化
	Users    *api.UserAPI
	Articles *api.ArticleAPI
	AI       *api.AIAPI
}

// Options 可调参数，零值取默认
type Options struct {
	ToastTTL       time.Duration // 通知自动消失时长
	SearchDebounce time.Duration // 搜索防抖等待
}

// State 状态快照，随每次变更推送给订阅者
type State struct {
	User            *model.User
	AuthModalOpen   bool
	SearchModalOpen bool

	CurrentSong    *model.Song
	IsPlaying      bool
	FullPlayerOpen bool

	DarkMode bool
	FontSize float64
	Festive  bool

	Toasts []Toast

	SearchResults []model.Article
	Searching     bool
}

// Store 应用状态容器
type Store struct {
	mu         sync.Mutex
	listeners  map[int]func(State)
	nextListen int

	user            *model.User
	authModalOpen   bool
	searchModalOpen bool

	currentSong    *model.Song
	isPlaying      bool
	fullPlayerOpen bool

	darkMode bool
	fontSize float64
	festive  bool

	toasts      []Toast
	toastTimers map[string]*time.Timer
	toastTTL    time.Duration

	searchSeq     int
	searchResults []model.Article
	searching     bool
	debouncer     *timing.Debouncer[string]

	prefs    kvstore.Store
	users    *api.UserAPI
	articles *api.ArticleAPI
	ai       *api.AIAPI
}

// New 创建 Store 并从持久化存储恢复界面偏好
func New(deps Deps, opts Options) *Store {
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = defaultToastTTL
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = defaultSearchDebounce
	}

	s := &Store{
		listeners:   make(map[int]func(State)),
		toastTimers: make(map[string]*time.Timer),
		toastTTL:    opts.ToastTTL,
		fontSize:    fontSizeCycle[0],
		prefs:       deps.Prefs,
		users:       deps.Users,
		articles:    deps.Articles,
		ai:          deps.AI,
	}
	s.debouncer = timing.Debounce(s.doSearch, opts.SearchDebounce)
	s.restorePrefs()
	return s
}

// restorePrefs 从持久化存储恢复主题、字号与节日装饰
func (s *Store) restorePrefs() {
	if s.prefs == nil {
		return
	}
	if v, ok := s.prefs.Get(themeKey); ok {
		s.darkMode = v == themeDark
	}
	if v, ok := s.prefs.Get(fontKey); ok {
		if size, err := strconv.ParseFloat(v, 64); err == nil {
			for _, allowed := range fontSizeCycle {
				if size == allowed {
					s.fontSize = size
				}
			}
		}
	}
	if v, ok := s.prefs.Get(festiveKey); ok {
		s.festive = v == "true"
	}
}

// Subscribe 订阅状态变更，返回取消订阅函数
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	listenID := s.nextListen
	s.nextListen++
	s.listeners[listenID] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, listenID)
	}
}

// State 返回当前状态快照
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close 释放后台计时器（防抖器与待过期的通知）
func (s *Store) Close() {
	s.debouncer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for toastID, t := range s.toastTimers {
		t.Stop()
		delete(s.toastTimers, toastID)
	}
}

// snapshotLocked 在持锁状态下构造快照，所有引用字段均为副本
func (s *Store) snapshotLocked() State {
	snap := State{
		AuthModalOpen:   s.authModalOpen,
		SearchModalOpen: s.searchModalOpen,
		IsPlaying:       s.isPlaying,
		FullPlayerOpen:  s.fullPlayerOpen,
		DarkMode:        s.darkMode,
		FontSize:        s.fontSize,
		Festive:         s.festive,
		Searching:       s.searching,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.currentSong != nil {
		song := *s.currentSong
		snap.CurrentSong = &song
	}
	if len(s.toasts) > 0 {
		snap.Toasts = make([]Toast, len(s.toasts))
		copy(snap.Toasts, s.toasts)
	}
	if len(s.searchResults) > 0 {
		snap.SearchResults = make([]model.Article, len(s.searchResults))
		copy(snap.SearchResults, s.searchResults)
	}
	return snap
}

// publish 向所有订阅者推送最新快照，回调在锁外执行
func (s *Store) publish() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
