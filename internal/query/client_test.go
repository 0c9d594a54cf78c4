package query

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"plum/internal/config"
	"plum/internal/model"
	"plum/internal/pkg/apierr"
	"plum/internal/pkg/kvstore"
	"plum/internal/pkg/token"
	"plum/internal/storage"
)

// newTestClient 使用极小延迟构造客户端，保持时序语义但让测试跑得快
func newTestClient() (*Client, kvstore.Store) {
	cfg := config.NetworkConfig{
		Interceptor: time.Millisecond,
		GetLatency:  time.Millisecond,
		PostLatency: time.Millisecond,
	}
	local := kvstore.NewMemory()
	minter := token.NewMinter("test-secret", time.Hour)
	return NewClient(cfg, storage.NewDataset(), minter, local), local
}

func TestListArticles(t *testing.T) {
	ctx := context.Background()

	Convey("GET /articles 列表端点", t, func() {
		c, _ := newTestClient()

		Convey("分类过滤 + 分页（Design 共 4 篇，每页 2 条）", func() {
			page, err := Get[model.Page[model.Article]](ctx, c, "/articles",
				Params{"category": "Design", "page": "1", "limit": "2"})
			So(err, ShouldBeNil)
			So(len(page.Items), ShouldEqual, 2)
			So(page.Total, ShouldEqual, 4)
			So(page.TotalPages, ShouldEqual, 2)
		})

		Convey("逐页拼接可无重复无遗漏地还原过滤集", func() {
			seen := map[string]bool{}
			first, err := Get[model.Page[model.Article]](ctx, c, "/articles",
				Params{"limit": "3", "page": "1"})
			So(err, ShouldBeNil)

			for p := 1; p <= first.TotalPages; p++ {
				page, err := Get[model.Page[model.Article]](ctx, c, "/articles",
					Params{"limit": "3", "page": strconv.Itoa(p)})
				So(err, ShouldBeNil)
				So(len(page.Items), ShouldBeLessThanOrEqualTo, 3)
				for _, a := range page.Items {
					So(seen[a.ID], ShouldBeFalse)
					seen[a.ID] = true
				}
			}
			So(len(seen), ShouldEqual, first.Total)
		})

		Convey("分类 All 等价于不过滤", func() {
			all, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{"category": "All"})
			So(err, ShouldBeNil)

			none, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{})
			So(err, ShouldBeNil)
			So(all.Total, ShouldEqual, none.Total)
		})

		Convey("省略 limit 时单页返回全部结果", func() {
			page, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{})
			So(err, ShouldBeNil)
			So(len(page.Items), ShouldEqual, page.Total)
			So(page.TotalPages, ShouldEqual, 1)
		})

		Convey("标签匹配允许带或不带 # 前缀", func() {
			// 数据集中 a-010 的标签为 "#布局"
			withMarker, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{"tag": "#布局"})
			So(err, ShouldBeNil)
			bare, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{"tag": "布局"})
			So(err, ShouldBeNil)

			So(withMarker.Total, ShouldEqual, bare.Total)
			So(withMarker.Total, ShouldBeGreaterThan, 0)

			// 数据集中 a-010 的另一标签 "CSS" 不带前缀
			tagged, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{"tag": "#CSS"})
			So(err, ShouldBeNil)
			So(tagged.Total, ShouldBeGreaterThan, 0)
		})

		Convey("关键词为大小写不敏感的子串匹配", func() {
			page, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{"q": "css"})
			So(err, ShouldBeNil)
			So(page.Total, ShouldBeGreaterThan, 0)
		})

		Convey("收藏过滤与其他过滤可组合", func() {
			page, err := Get[model.Page[model.Article]](ctx, c, "/articles",
				Params{"userId": "u-admin-1", "favorites": "true"})
			So(err, ShouldBeNil)
			So(page.Total, ShouldEqual, 2)

			combined, err := Get[model.Page[model.Article]](ctx, c, "/articles",
				Params{"userId": "u-admin-1", "favorites": "true", "category": "Design"})
			So(err, ShouldBeNil)
			So(combined.Total, ShouldEqual, 1)
		})
	})
}

func TestArticleDetail(t *testing.T) {
	ctx := context.Background()

	Convey("GET /articles/:id 详情端点", t, func() {
		c, _ := newTestClient()

		Convey("命中返回文章", func() {
			a, err := Get[model.Article](ctx, c, "/articles/a-008", nil)
			So(err, ShouldBeNil)
			So(a.Title, ShouldContainSubstring, "状态机")
		})

		Convey("未命中以 404 拒绝，绝不静默返回空值", func() {
			_, err := Get[model.Article](ctx, c, "/articles/a-404", nil)
			So(err, ShouldNotBeNil)
			So(apierr.IsNotFound(err), ShouldBeTrue)
		})
	})
}

func TestUnknownEndpoint(t *testing.T) {
	ctx := context.Background()

	Convey("未知端点必须以结构化 404 拒绝", t, func() {
		c, _ := newTestClient()

		_, err := c.Get(ctx, "/nope", nil)
		So(apierr.StatusOf(err), ShouldEqual, apierr.StatusNotFound)

		_, err = c.Post(ctx, "/nope", nil)
		So(apierr.StatusOf(err), ShouldEqual, apierr.StatusNotFound)
	})
}

func TestCreateArticle(t *testing.T) {
	ctx := context.Background()

	Convey("POST /articles/create 发布端点", t, func() {
		c, _ := newTestClient()

		Convey("新文章分配ID、截取摘要、盖日期戳并头部插入", func() {
			long := ""
			for i := 0; i < 80; i++ {
				long += "字"
			}

			created, err := Post[model.Article](ctx, c, "/articles/create",
				model.CreateArticleRequest{Title: "新文章", Content: long})
			So(err, ShouldBeNil)
			So(created.ID, ShouldNotBeEmpty)
			So(len([]rune(created.Summary)), ShouldEqual, summaryPrefixLen+3)
			So(created.Date, ShouldEqual, time.Now().Format(dateLayout))

			page, err := Get[model.Page[model.Article]](ctx, c, "/articles", Params{"limit": "1"})
			So(err, ShouldBeNil)
			So(page.Items[0].ID, ShouldEqual, created.ID)
			So(page.Total, ShouldEqual, 11)
		})

		Convey("短内容摘要不截断", func() {
			created, err := Post[model.Article](ctx, c, "/articles/create",
				model.CreateArticleRequest{Title: "短文", Content: "一句话"})
			So(err, ShouldBeNil)
			So(created.Summary, ShouldEqual, "一句话")
		})

		Convey("空标题拒绝", func() {
			_, err := Post[model.Article](ctx, c, "/articles/create",
				model.CreateArticleRequest{Title: "  "})
			So(apierr.StatusOf(err), ShouldEqual, apierr.StatusBadRequest)
		})
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	Convey("POST /login 登录端点", t, func() {
		c, _ := newTestClient()

		Convey("空标识符拒绝", func() {
			_, err := Post[model.LoginResult](ctx, c, "/login", model.LoginRequest{Username: "  "})
			So(apierr.StatusOf(err), ShouldEqual, apierr.StatusBadRequest)
		})

		Convey("命名启发式推导角色", func() {
			res, err := Post[model.LoginResult](ctx, c, "/login", model.LoginRequest{Username: "admin_bob"})
			So(err, ShouldBeNil)
			So(res.User.Role, ShouldEqual, model.RoleAdmin)
			So(res.Token, ShouldNotBeEmpty)

			res, err = Post[model.LoginResult](ctx, c, "/login", model.LoginRequest{Username: "vip_mei"})
			So(err, ShouldBeNil)
			So(res.User.Role, ShouldEqual, model.RoleVIP)
			So(res.User.VIPType, ShouldEqual, model.VIPYearly)

			res, err = Post[model.LoginResult](ctx, c, "/login", model.LoginRequest{Username: "plain"})
			So(err, ShouldBeNil)
			So(res.User.Role, ShouldEqual, model.RoleUser)
		})
	})
}

func TestUsageEndpoint(t *testing.T) {
	ctx := context.Background()

	Convey("POST /ai/usage 用量端点", t, func() {
		c, _ := newTestClient()

		Convey("每次调用精确 +1 并返回最新值", func() {
			res, err := Post[model.UsageResult](ctx, c, "/ai/usage", model.UsageRequest{UserID: "u-mei"})
			So(err, ShouldBeNil)
			So(res.Usage, ShouldEqual, 1)

			res, err = Post[model.UsageResult](ctx, c, "/ai/usage", model.UsageRequest{UserID: "u-mei"})
			So(err, ShouldBeNil)
			So(res.Usage, ShouldEqual, 2)
		})

		Convey("并发调用全部生效", func() {
			const n = 20
			var wg sync.WaitGroup
			wg.Add(n)
			for i := 0; i < n; i++ {
				go func() {
					defer wg.Done()
					_, _ = Post[model.UsageResult](ctx, c, "/ai/usage", model.UsageRequest{UserID: "u-conc"})
				}()
			}
			wg.Wait()

			res, err := Post[model.UsageResult](ctx, c, "/ai/usage", model.UsageRequest{UserID: "u-conc"})
			So(err, ShouldBeNil)
			So(res.Usage, ShouldEqual, n+1)
		})

		Convey("缺少用户ID且无会话令牌时拒绝", func() {
			_, err := Post[model.UsageResult](ctx, c, "/ai/usage", model.UsageRequest{})
			So(apierr.StatusOf(err), ShouldEqual, apierr.StatusBadRequest)
		})
	})
}

func TestSessionEndpoints(t *testing.T) {
	ctx := context.Background()

	Convey("依赖会话令牌的端点", t, func() {
		c, local := newTestClient()

		Convey("匿名签到拒绝", func() {
			_, err := Post[model.CheckInResult](ctx, c, "/user/checkin", nil)
			So(apierr.StatusOf(err), ShouldEqual, apierr.StatusUnauthorized)
		})

		Convey("登录后令牌落盘，签到按令牌归属累计", func() {
			res, err := Post[model.LoginResult](ctx, c, "/login", model.LoginRequest{Username: "mei"})
			So(err, ShouldBeNil)
			So(local.Set("token", res.Token), ShouldBeNil)

			first, err := Post[model.CheckInResult](ctx, c, "/user/checkin", nil)
			So(err, ShouldBeNil)
			So(first.Total, ShouldEqual, first.Points)

			second, err := Post[model.CheckInResult](ctx, c, "/user/checkin", nil)
			So(err, ShouldBeNil)
			So(second.Total, ShouldEqual, first.Total+second.Points)
		})

		Convey("用户资料更新只回显补丁", func() {
			bio := "新的简介"
			echoed, err := Post[model.UserPatch](ctx, c, "/user/update", model.UserPatch{Bio: &bio})
			So(err, ShouldBeNil)
			So(*echoed.Bio, ShouldEqual, bio)
			So(echoed.Name, ShouldBeNil)
		})
	})
}

func TestStaticCollections(t *testing.T) {
	ctx := context.Background()

	Convey("静态集合端点", t, func() {
		c, _ := newTestClient()

		songs, err := Get[[]model.Song](ctx, c, "/music", nil)
		So(err, ShouldBeNil)
		So(len(songs), ShouldBeGreaterThan, 0)

		posts, err := Get[[]model.Post](ctx, c, "/community", nil)
		So(err, ShouldBeNil)
		So(len(posts), ShouldBeGreaterThan, 0)

		notices, err := Get[[]model.Announcement](ctx, c, "/announcements", nil)
		So(err, ShouldBeNil)
		So(len(notices), ShouldBeGreaterThan, 0)

		hot, err := Get[[]model.HotTopic](ctx, c, "/search/hot", nil)
		So(err, ShouldBeNil)
		So(len(hot), ShouldBeGreaterThan, 0)

		history, err := Get[[]model.AIRecord](ctx, c, "/ai/history", nil)
		So(err, ShouldBeNil)
		So(len(history), ShouldBeGreaterThan, 0)
	})
}

func TestLatencyAndCancellation(t *testing.T) {
	Convey("延迟注入与可选取消", t, func() {
		cfg := config.NetworkConfig{
			Interceptor: 20 * time.Millisecond,
			GetLatency:  30 * time.Millisecond,
			PostLatency: 30 * time.Millisecond,
		}
		c := NewClient(cfg, storage.NewDataset(), token.NewMinter("s", time.Hour), kvstore.NewMemory())

		Convey("请求至少经历拦截器 + 方法延迟", func() {
			start := time.Now()
			_, err := c.Get(context.Background(), "/music", nil)
			So(err, ShouldBeNil)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 50*time.Millisecond)
		})

		Convey("已取消的 context 提前返回", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := c.Get(ctx, "/music", nil)
			So(err, ShouldEqual, context.Canceled)
		})
	})
}
