package api

import (
	"context"

	"plum/internal/model"
	"plum/internal/query"
)

// CommunityAPI 社区接口
type CommunityAPI struct {
	client *query.Client
}

// NewCommunityAPI 创建社区接口
func NewCommunityAPI(c *query.Client) *CommunityAPI {
	return &CommunityAPI{client: c}
}

// Posts 查询社区动态
func (a *CommunityAPI) Posts(ctx context.Context) ([]model.Post, error) {
	return query.Get[[]model.Post](ctx, a.client, "/community", nil)
}
