package query

import (
	"strconv"
	"strings"

	"plum/internal/model"
)

// filterArticles 按固定顺序应用可组合过滤：
// 关键词 → 分类 → 标签 → 收藏；每一步都在上一步的结果上收窄
func filterArticles(all []model.Article, q model.ArticleQuery) []model.Article {
	out := all

	if kw := strings.TrimSpace(q.Query); kw != "" {
		kw = strings.ToLower(kw)
		filtered := out[:0:0]
		for _, a := range out {
			if matchKeyword(a, kw) {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	if q.Category != "" && q.Category != model.CategoryAll {
		filtered := out[:0:0]
		for _, a := range out {
			if a.Category == q.Category {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	if q.Tag != "" {
		filtered := out[:0:0]
		for _, a := range out {
			if hasTag(a.Tags, q.Tag) {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	if q.Favorites && q.UserID != "" {
		filtered := out[:0:0]
		for _, a := range out {
			if contains(a.FavoredBy, q.UserID) {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	return out
}

// matchKeyword 大小写不敏感的子串匹配：标题、摘要、标签
func matchKeyword(a model.Article, kw string) bool {
	if strings.Contains(strings.ToLower(a.Title), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), kw) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return false
}

// hasTag 标签成员匹配，存储和查询都允许带 "#" 前缀
func hasTag(tags []string, want string) bool {
	want = strings.TrimPrefix(want, "#")
	for _, t := range tags {
		if strings.TrimPrefix(t, "#") == want {
			return true
		}
	}
	return false
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

// paginate 1 起始分页；limit<=0 表示不分页，整个结果集作为单页返回
// TotalPages 按过滤后的总数向上取整
func paginate[T any](items []T, page, limit int) model.Page[T] {
	total := len(items)

	if limit <= 0 {
		totalPages := 0
		if total > 0 {
			totalPages = 1
		}
		return model.Page[T]{Items: items, Total: total, Page: 1, Limit: total, TotalPages: totalPages}
	}

	if page < 1 {
		page = 1
	}
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return model.Page[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// parseArticleQuery 从请求参数还原查询条件
func parseArticleQuery(params Params) model.ArticleQuery {
	q := model.ArticleQuery{
		Query:    params["q"],
		Category: params["category"],
		Tag:      params["tag"],
		UserID:   params["userId"],
	}
	if v, err := strconv.Atoi(params["page"]); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(params["limit"]); err == nil {
		q.Limit = v
	}
	if params["favorites"] == "true" {
		q.Favorites = true
	}
	return q
}
