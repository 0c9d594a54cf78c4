package model

// Post 社区动态
type Post struct {
	ID       string   `json:"id"`
	Author   string   `json:"author"`
	Avatar   string   `json:"avatar"`
	Content  string   `json:"content"`
	Images   []string `json:"images,omitempty"`
	Likes    int      `json:"likes"`
	Comments int      `json:"comments"`
	Date     string   `json:"date"`
}

// Announcement 站点公告
type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"` // info / warning / activity
	Date    string `json:"date"`
}

// HotTopic 热搜词条
type HotTopic struct {
	ID      string `json:"id"`
	Keyword string `json:"keyword"`
	Heat    int    `json:"heat"`
}

// AIRecord AI 助手历史会话
type AIRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}
