package api

import (
	"context"

	"plum/internal/model"
	"plum/internal/query"
)

// SystemAPI 站点系统接口
type SystemAPI struct {
	client *query.Client
}

// NewSystemAPI 创建站点系统接口
func NewSystemAPI(c *query.Client) *SystemAPI {
	return &SystemAPI{client: c}
}

// Announcements 查询公告
func (a *SystemAPI) Announcements(ctx context.Context) ([]model.Announcement, error) {
	return query.Get[[]model.Announcement](ctx, a.client, "/announcements", nil)
}

// HotTopics 查询热搜词条
func (a *SystemAPI) HotTopics(ctx context.Context) ([]model.HotTopic, error) {
	return query.Get[[]model.HotTopic](ctx, a.client, "/search/hot", nil)
}
