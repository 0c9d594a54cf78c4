package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"plum/internal/model"
	"plum/internal/pkg/apierr"
	"plum/internal/pkg/id"
)

const (
	summaryPrefixLen = 60           // 摘要截取长度（按字符数）
	checkInPoints    = 10           // 每次签到积分
	dateLayout       = "2006-01-02" // 文章日期格式
)

// registerRoutes 注册封闭路由表
// 详情端点 /articles/:id 在 Client.Get 中以动态前缀解析
func (c *Client) registerRoutes() {
	c.getRoutes["/articles"] = c.listArticles
	c.getRoutes["/community"] = c.listPosts
	c.getRoutes["/music"] = c.listSongs
	c.getRoutes["/announcements"] = c.listAnnouncements
	c.getRoutes["/search/hot"] = c.listHotTopics
	c.getRoutes["/ai/history"] = c.listAIHistory

	c.postRoutes["/articles/create"] = c.createArticle
	c.postRoutes["/login"] = c.login
	c.postRoutes["/user/update"] = c.updateUser
	c.postRoutes["/user/checkin"] = c.checkIn
	c.postRoutes["/ai/usage"] = c.incrUsage
}

// listArticles GET /articles
// 过滤顺序固定：关键词 → 分类 → 标签 → 收藏 → 分页
func (c *Client) listArticles(params Params) (any, error) {
	q := parseArticleQuery(params)
	filtered := filterArticles(c.data.Articles(), q)
	return paginate(filtered, q.Page, q.Limit), nil
}

// getArticleDetail GET /articles/:id
// 未命中必须以 404 拒绝，不允许静默返回空值
func (c *Client) getArticleDetail(articleID string) (any, error) {
	a, ok := c.data.ArticleByID(articleID)
	if !ok {
		return nil, apierr.NotFound(fmt.Sprintf("文章不存在: %s", articleID))
	}
	return a, nil
}

func (c *Client) listPosts(Params) (any, error) {
	return c.data.Posts(), nil
}

func (c *Client) listSongs(Params) (any, error) {
	return c.data.Songs(), nil
}

func (c *Client) listAnnouncements(Params) (any, error) {
	return c.data.Announcements(), nil
}

func (c *Client) listHotTopics(Params) (any, error) {
	return c.data.HotTopics(), nil
}

func (c *Client) listAIHistory(Params) (any, error) {
	return c.data.AIRecords(), nil
}

// createArticle POST /articles/create
// 分配新ID、按固定长度截取摘要、盖当天日期戳，头部插入保持最新在前
func (c *Client) createArticle(body any) (any, error) {
	req, ok := body.(model.CreateArticleRequest)
	if !ok {
		return nil, apierr.Invalid("请求体格式错误")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apierr.Invalid("标题不能为空")
	}

	category := req.Category
	if category == "" {
		category = "Life"
	}

	a := model.Article{
		ID:       id.New(),
		Title:    req.Title,
		Summary:  summarize(req.Content),
		Content:  req.Content,
		Category: category,
		Tags:     req.Tags,
		Author:   "阿梅",
		Date:     time.Now().Format(dateLayout),
	}
	c.data.InsertArticle(a)

	log.Info().Str("article_id", a.ID).Str("title", a.Title).Msg("article created")
	return a, nil
}

// summarize 截取内容前缀作为摘要
func summarize(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryPrefixLen {
		return content
	}
	return string(runes[:summaryPrefixLen]) + "..."
}

// login POST /login
// 角色由标识符命名启发式推导：含 admin 为管理员，含 vip 为VIP，否则普通用户
func (c *Client) login(body any) (any, error) {
	req, ok := body.(model.LoginRequest)
	if !ok {
		return nil, apierr.Invalid("请求体格式错误")
	}

	name := strings.TrimSpace(req.Username)
	if name == "" {
		return nil, apierr.Invalid("用户名不能为空")
	}

	lower := strings.ToLower(name)
	role := model.RoleUser
	level := model.LevelFoundation
	vip := model.VIPNone
	switch {
	case strings.Contains(lower, "admin"):
		role = model.RoleAdmin
		level = model.LevelSpiritTrans
	case strings.Contains(lower, "vip"):
		role = model.RoleVIP
		level = model.LevelGoldenCore
		vip = model.VIPYearly
	}

	userID := "u-" + lower
	user := model.User{
		ID:        userID,
		Name:      name,
		Avatar:    "/avatars/default.png",
		Email:     lower + "@plum.blog",
		Bio:       "这个人很懒，什么都没有写。",
		Role:      role,
		AIUsage:   c.data.Usage(userID),
		Points:    c.data.AddPoints(userID, 0),
		Followers: 12,
		Following: 34,
		Level:     level,
		VIPType:   vip,
	}

	tok, err := c.minter.Mint(user.ID, user.Name, user.Role.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to mint session token")
		return nil, apierr.New(apierr.StatusInternal, "生成会话令牌失败")
	}

	log.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("user logged in")
	return model.LoginResult{User: user, Token: tok}, nil
}

// updateUser POST /user/update
// 模拟后端只回显补丁，合并由调用方（Store）在成功后完成
func (c *Client) updateUser(body any) (any, error) {
	patch, ok := body.(model.UserPatch)
	if !ok {
		return nil, apierr.Invalid("请求体格式错误")
	}
	return patch, nil
}

// checkIn POST /user/checkin
// 按会话令牌归属用户累计积分，匿名请求拒绝
func (c *Client) checkIn(any) (any, error) {
	userID := c.authUserID()
	if userID == "" {
		return nil, apierr.Unauthorized("请先登录")
	}

	total := c.data.AddPoints(userID, checkInPoints)
	return model.CheckInResult{Points: checkInPoints, Total: total}, nil
}

// incrUsage POST /ai/usage
// 计数是真累加器：每次调用都精确 +1 并返回最新值，并发调用串行化
func (c *Client) incrUsage(body any) (any, error) {
	req, ok := body.(model.UsageRequest)
	if !ok {
		return nil, apierr.Invalid("请求体格式错误")
	}

	userID := req.UserID
	if userID == "" {
		userID = c.authUserID()
	}
	if userID == "" {
		return nil, apierr.Invalid("缺少用户ID")
	}

	return model.UsageResult{Usage: c.data.IncrUsage(userID)}, nil
}
