package model

// LoginResult 登录响应
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"` // 会话令牌，由调用方持久化
}

// CheckInResult 签到响应
type CheckInResult struct {
	Points int `json:"points"` // 本次获得积分
	Total  int `json:"total"`  // 累计积分
}

// UsageResult AI 使用量响应
type UsageResult struct {
	Usage int `json:"usage"` // 自增后的最新计数
}
