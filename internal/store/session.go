package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"plum/internal/model"
)

// ErrNoSession 未登录时调用需要会话的动作
var ErrNoSession = errors.New("未登录")

// Login 登录并替换整个会话用户
// 失败时提示错误并原样返回，调用方可自行响应；
// 与 Logout 竞争时，后完成者决定最终会话状态
func (s *Store) Login(ctx context.Context, username string) error {
	res, err := s.users.Login(ctx, username)
	if err != nil {
		s.ShowToast("登录失败："+err.Error(), SeverityError)
		return err
	}

	s.mu.Lock()
	u := res.User
	s.user = &u
	s.authModalOpen = false
	s.mu.Unlock()

	s.persist(tokenKey, res.Token)

	s.publish()
	s.ShowToast("欢迎回来，"+u.Name, SeveritySuccess)
	return nil
}

// Logout 同步清除会话
// 仅限会话范围：播放器、主题等独立状态不受影响
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Delete(tokenKey); err != nil {
			log.Warn().Err(err).Msg("failed to clear session token")
		}
	}

	s.publish()
	s.ShowToast("已退出登录", SeverityInfo)
}

// UpdateUser 更新用户资料
// 不做乐观合并：先发请求，成功后才把补丁浅合并进当前用户
func (s *Store) UpdateUser(ctx context.Context, patch model.UserPatch) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	s.mu.Unlock()

	echoed, err := s.users.Update(ctx, patch)
	if err != nil {
		s.ShowToast("资料更新失败", SeverityError)
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		echoed.Apply(s.user)
	}
	s.mu.Unlock()

	s.publish()
	s.ShowToast("资料已更新", SeveritySuccess)
	return nil
}

// RequireAuth 认证门卫
// 已登录则同步执行回调并返回 true；否则打开登录弹窗、提示并返回 false。
// 回调不会排队等登录完成，登录后需要调用方重新触发
func (s *Store) RequireAuth(fn func()) bool {
	s.mu.Lock()
	if s.user != nil {
		s.mu.Unlock()
		fn()
		return true
	}
	s.authModalOpen = true
	s.mu.Unlock()

	s.publish()
	s.ShowToast("请先登录", SeverityInfo)
	return false
}

// CloseAuthModal 关闭登录弹窗
func (s *Store) CloseAuthModal() {
	s.mu.Lock()
	s.authModalOpen = false
	s.mu.Unlock()

	s.publish()
}

// IncrementAiUsage 上报一次 AI 使用
// 未登录时是 no-op；成功后仅以服务端返回的总数覆盖 AIUsage，
// 绝不本地自增，保证并发上报下的计数正确
func (s *Store) IncrementAiUsage(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil
	}
	userID := s.user.ID
	s.mu.Unlock()

	total, err := s.ai.IncrementUsage(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to report ai usage")
		return err
	}

	s.mu.Lock()
	if s.user != nil && s.user.ID == userID {
		s.user.AIUsage = total
	}
	s.mu.Unlock()

	s.publish()
	return nil
}

// CheckIn 每日签到，成功后以服务端累计积分覆盖本地值
func (s *Store) CheckIn(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	userID := s.user.ID
	s.mu.Unlock()

	res, err := s.users.CheckIn(ctx)
	if err != nil {
		s.ShowToast("签到失败", SeverityError)
		return err
	}

	s.mu.Lock()
	if s.user != nil && s.user.ID == userID {
		s.user.Points = res.Total
	}
	s.mu.Unlock()

	s.publish()
	s.ShowToast(fmt.Sprintf("签到成功，+%d 积分", res.Points), SeveritySuccess)
	return nil
}
