// Package query 模拟请求客户端
// 封装人工延迟注入、封闭路由表、分页/过滤/搜索解析与用量计数，
// 对上层提供 get/post 风格的进程内调用契约
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"plum/internal/config"
	"plum/internal/pkg/apierr"
	"plum/internal/pkg/kvstore"
	"plum/internal/pkg/token"
	"plum/internal/storage"
)

// Params 查询参数（对应原始请求的 querystring）
type Params map[string]string

type getHandler func(params Params) (any, error)
type postHandler func(body any) (any, error)

// Client 模拟请求客户端
// 路由表在构造时注册且封闭，未知端点一律以 404 拒绝
type Client struct {
	cfg    config.NetworkConfig
	data   *storage.Dataset
	minter *token.Minter
	local  kvstore.Store // 读取 "token" 键下持久化的会话令牌

	getRoutes  map[string]getHandler
	postRoutes map[string]postHandler
}

// NewClient 创建请求客户端
func NewClient(cfg config.NetworkConfig, data *storage.Dataset, minter *token.Minter, local kvstore.Store) *Client {
	c := &Client{
		cfg:        cfg,
		data:       data,
		minter:     minter,
		local:      local,
		getRoutes:  make(map[string]getHandler),
		postRoutes: make(map[string]postHandler),
	}
	c.registerRoutes()
	return c
}

// Get 派发 GET 请求：拦截器延迟 + GET 延迟后解析端点
// 默认行为是请求总会在延迟后完成；传入可取消的 context 可提前中断
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (any, error) {
	start := time.Now()
	if err := c.delay(ctx, c.cfg.Interceptor+c.cfg.GetLatency); err != nil {
		return nil, err
	}

	h, ok := c.getRoutes[endpoint]
	if !ok {
		// 动态路由：/articles/:id
		if id, found := strings.CutPrefix(endpoint, "/articles/"); found && id != "" && !strings.Contains(id, "/") {
			return c.getArticleDetail(id)
		}
		log.Warn().Str("method", "GET").Str("endpoint", endpoint).Msg("unknown endpoint")
		return nil, apierr.NotFound(fmt.Sprintf("接口不存在: GET %s", endpoint))
	}

	res, err := h(params)
	log.Debug().
		Str("method", "GET").
		Str("endpoint", endpoint).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("request dispatched")
	return res, err
}

// Post 派发 POST 请求：拦截器延迟 + POST 延迟后解析端点
func (c *Client) Post(ctx context.Context, endpoint string, body any) (any, error) {
	start := time.Now()
	if err := c.delay(ctx, c.cfg.Interceptor+c.cfg.PostLatency); err != nil {
		return nil, err
	}

	h, ok := c.postRoutes[endpoint]
	if !ok {
		log.Warn().Str("method", "POST").Str("endpoint", endpoint).Msg("unknown endpoint")
		return nil, apierr.NotFound(fmt.Sprintf("接口不存在: POST %s", endpoint))
	}

	res, err := h(body)
	log.Debug().
		Str("method", "POST").
		Str("endpoint", endpoint).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("request dispatched")
	return res, err
}

// delay 模拟网络延迟，context 取消时提前返回
func (c *Client) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// authUserID 从持久化的会话令牌解析当前用户ID
// 令牌缺失或无效时返回空串，模拟后端对匿名请求不报错
func (c *Client) authUserID() string {
	if c.local == nil {
		return ""
	}
	raw, ok := c.local.Get("token")
	if !ok || raw == "" {
		return ""
	}
	claims, err := c.minter.Parse(raw)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return ""
	}
	return claims.UserID
}

// Get 以具体类型调用 GET 端点
func Get[T any](ctx context.Context, c *Client, endpoint string, params Params) (T, error) {
	var zero T
	v, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, apierr.New(apierr.StatusInternal, fmt.Sprintf("响应类型不匹配: GET %s", endpoint))
	}
	return res, nil
}

// Post 以具体类型调用 POST 端点
func Post[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	var zero T
	v, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, apierr.New(apierr.StatusInternal, fmt.Sprintf("响应类型不匹配: POST %s", endpoint))
	}
	return res, nil
}
