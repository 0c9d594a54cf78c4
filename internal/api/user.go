package api

import (
	"context"

	"plum/internal/model"
	"plum/internal/query"
)

// UserAPI 用户接口
type UserAPI struct {
	client *query.Client
}

// NewUserAPI 创建用户接口
func NewUserAPI(c *query.Client) *UserAPI {
	return &UserAPI{client: c}
}

// Login 登录，角色由标识符启发式推导
func (u *UserAPI) Login(ctx context.Context, username string) (model.LoginResult, error) {
	return query.Post[model.LoginResult](ctx, u.client, "/login", model.LoginRequest{Username: username})
}

// Update 更新用户资料，后端回显补丁，由调用方合并
func (u *UserAPI) Update(ctx context.Context, patch model.UserPatch) (model.UserPatch, error) {
	return query.Post[model.UserPatch](ctx, u.client, "/user/update", patch)
}

// CheckIn 每日签到
func (u *UserAPI) CheckIn(ctx context.Context) (model.CheckInResult, error) {
	return query.Post[model.CheckInResult](ctx, u.client, "/user/checkin", nil)
}
