package model

// Article 文章实体
type Article struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`      // 标签可能带 "#" 前缀，匹配时两种写法等价
	Author    string   `json:"author"`
	Date      string   `json:"date"`      // YYYY-MM-DD
	Views     int      `json:"views"`
	Likes     int      `json:"likes"`
	FavoredBy []string `json:"favored_by,omitempty"` // 收藏该文章的用户ID
}

// ArticleQuery 文章列表查询条件
// 过滤顺序：关键词 → 分类 → 标签 → 收藏 → 分页
type ArticleQuery struct {
	Query     string // 关键词（标题/摘要/标签，大小写不敏感的子串匹配）
	Category  string // 分类（"All" 或空表示不过滤）
	Tag       string // 标签成员匹配
	UserID    string // 收藏过滤所属用户
	Favorites bool   // 仅返回 UserID 收藏的文章
	Page      int    // 页码（1 起）
	Limit     int    // 每页条数（<=0 表示不分页）
}

// CategoryAll 分类过滤哨兵值，等价于不过滤
const CategoryAll = "All"
