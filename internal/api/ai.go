package api

import (
	"context"

	"plum/internal/model"
	"plum/internal/query"
)

// AIAPI AI 助手接口
type AIAPI struct {
	client *query.Client
}

// NewAIAPI 创建 AI 助手接口
func NewAIAPI(c *query.Client) *AIAPI {
	return &AIAPI{client: c}
}

// IncrementUsage 上报一次使用并返回服务端最新计数
func (a *AIAPI) IncrementUsage(ctx context.Context, userID string) (int, error) {
	res, err := query.Post[model.UsageResult](ctx, a.client, "/ai/usage", model.UsageRequest{UserID: userID})
	if err != nil {
		return 0, err
	}
	return res.Usage, nil
}

// History 查询历史会话
func (a *AIAPI) History(ctx context.Context) ([]model.AIRecord, error) {
	return query.Get[[]model.AIRecord](ctx, a.client, "/ai/history", nil)
}
