package model

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
}

// CreateArticleRequest 发布文章请求
type CreateArticleRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UsageRequest AI 使用量上报请求
type UsageRequest struct {
	UserID string `json:"user_id"`
}
