package api

import (
	"context"

	"plum/internal/model"
	"plum/internal/query"
)

// MusicAPI 音乐接口
type MusicAPI struct {
	client *query.Client
}

// NewMusicAPI 创建音乐接口
func NewMusicAPI(c *query.Client) *MusicAPI {
	return &MusicAPI{client: c}
}

// Songs 查询歌单
func (a *MusicAPI) Songs(ctx context.Context) ([]model.Song, error) {
	return query.Get[[]model.Song](ctx, a.client, "/music", nil)
}
