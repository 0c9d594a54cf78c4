// Package storage 内存数据集
// 模拟后端的唯一数据持有者：所有集合的变更都必须经过本包方法，
// 读取返回副本，外部不允许直接改动底层切片
package storage

import (
	"sync"

	"plum/internal/model"
)

// Dataset 进程内数据集
type Dataset struct {
	mu            sync.RWMutex
	articles      []model.Article
	songs         []model.Song
	posts         []model.Post
	announcements []model.Announcement
	hotTopics     []model.HotTopic
	aiRecords     []model.AIRecord
	usage         map[string]int // userID -> AI 使用次数
	points        map[string]int // userID -> 累计签到积分
}

// NewDataset 创建并填充初始数据
func NewDataset() *Dataset {
	d := &Dataset{
		usage:  make(map[string]int),
		points: make(map[string]int),
	}
	d.articles = seedArticles()
	d.songs = seedSongs()
	d.posts = seedPosts()
	d.announcements = seedAnnouncements()
	d.hotTopics = seedHotTopics()
	d.aiRecords = seedAIRecords()
	return d
}

// Articles 返回全部文章（副本，最新在前）
func (d *Dataset) Articles() []model.Article {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Article, len(d.articles))
	copy(out, d.articles)
	return out
}

// ArticleByID 按ID精确查找文章
func (d *Dataset) ArticleByID(id string) (model.Article, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.articles {
		if a.ID == id {
			return a, true
		}
	}
	return model.Article{}, false
}

// InsertArticle 头部插入新文章，保持最新在前的顺序
func (d *Dataset) InsertArticle(a model.Article) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.articles = append([]model.Article{a}, d.articles...)
}

// Songs 返回歌单（副本）
func (d *Dataset) Songs() []model.Song {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Song, len(d.songs))
	copy(out, d.songs)
	return out
}

// Posts 返回社区动态（副本）
func (d *Dataset) Posts() []model.Post {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Post, len(d.posts))
	copy(out, d.posts)
	return out
}

// Announcements 返回公告列表（副本）
func (d *Dataset) Announcements() []model.Announcement {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Announcement, len(d.announcements))
	copy(out, d.announcements)
	return out
}

// HotTopics 返回热搜词条（副本）
func (d *Dataset) HotTopics() []model.HotTopic {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.HotTopic, len(d.hotTopics))
	copy(out, d.hotTopics)
	return out
}

// AIRecords 返回 AI 助手历史会话（副本）
func (d *Dataset) AIRecords() []model.AIRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.AIRecord, len(d.aiRecords))
	copy(out, d.aiRecords)
	return out
}

// IncrUsage 原子自增用户的 AI 使用计数并返回最新值
// 读-改-写在同一临界区内完成，并发调用不会丢失更新
func (d *Dataset) IncrUsage(userID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.usage[userID]++
	return d.usage[userID]
}

// Usage 读取用户的 AI 使用计数
func (d *Dataset) Usage(userID string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.usage[userID]
}

// AddPoints 增加用户积分并返回累计值
func (d *Dataset) AddPoints(userID string, delta int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.points[userID] += delta
	return d.points[userID]
}
