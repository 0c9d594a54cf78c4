// Package api 领域接口门面
// 把具名的领域操作翻译成请求客户端调用，错误原样透传
package api

import (
	"context"
	"strconv"

	"plum/internal/model"
	"plum/internal/query"
)

// ArticleAPI 文章接口
type ArticleAPI struct {
	client *query.Client
}

// NewArticleAPI 创建文章接口
func NewArticleAPI(c *query.Client) *ArticleAPI {
	return &ArticleAPI{client: c}
}

// List 分页查询文章列表
func (a *ArticleAPI) List(ctx context.Context, q model.ArticleQuery) (model.Page[model.Article], error) {
	params := query.Params{}
	if q.Query != "" {
		params["q"] = q.Query
	}
	if q.Category != "" {
		params["category"] = q.Category
	}
	if q.Tag != "" {
		params["tag"] = q.Tag
	}
	if q.UserID != "" {
		params["userId"] = q.UserID
	}
	if q.Favorites {
		params["favorites"] = "true"
	}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	return query.Get[model.Page[model.Article]](ctx, a.client, "/articles", params)
}

// Get 按ID查询文章详情
func (a *ArticleAPI) Get(ctx context.Context, articleID string) (model.Article, error) {
	return query.Get[model.Article](ctx, a.client, "/articles/"+articleID, nil)
}

// Create 发布新文章
func (a *ArticleAPI) Create(ctx context.Context, req model.CreateArticleRequest) (model.Article, error) {
	return query.Post[model.Article](ctx, a.client, "/articles/create", req)
}
