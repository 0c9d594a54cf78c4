package model

// Page 分页响应（所有列表端点共用）
// TotalPages 基于过滤后的总数计算，而非全量数据集
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}
