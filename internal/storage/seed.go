package storage

import "plum/internal/model"

// 初始数据集：10 篇文章（其中 Design 分类 4 篇），歌单、动态、公告、热搜与 AI 历史
// 内容为占位素材，ID 稳定以便详情页与收藏过滤引用

func seedArticles() []model.Article {
	return []model.Article{
		{
			ID:       "a-010",
			Title:    "重构博客首页的瀑布流布局",
			Summary:  "记录一次首页卡片瀑布流的重构过程，从绝对定位到原生栅格。",
			Content:  "瀑布流看似简单，实际要处理图片加载抖动、窗口缩放和无限滚动三件事……",
			Category: "Design",
			Tags:     []string{"#布局", "CSS", "#重构"},
			Author:   "阿梅",
			Date:     "2025-06-18",
			Views:    1024,
			Likes:    88,
			FavoredBy: []string{
				"u-admin-1",
			},
		},
		{
			ID:       "a-009",
			Title:    "给博客加一盏会呼吸的夜灯",
			Summary:  "深色模式不只是反色：对比度、阴影层级和插画的暗色适配。",
			Content:  "很多站点的深色模式只是把背景变黑，文字变白。真正舒服的夜间主题需要重新设计阴影……",
			Category: "Design",
			Tags:     []string{"深色模式", "#配色"},
			Author:   "阿梅",
			Date:     "2025-05-30",
			Views:    867,
			Likes:    73,
		},
		{
			ID:       "a-008",
			Title:    "用状态机管理音乐播放器",
			Summary:  "播放、暂停、空闲三个状态之间的迁移，比布尔标志位可靠得多。",
			Content:  "播放器最常见的 bug 是\"没有歌曲却在播放\"。把播放器建模成状态机之后……",
			Category: "Tech",
			Tags:     []string{"#状态机", "播放器"},
			Author:   "阿梅",
			Date:     "2025-05-12",
			Views:    1311,
			Likes:    120,
			FavoredBy: []string{
				"u-admin-1", "u-vip-1",
			},
		},
		{
			ID:       "a-007",
			Title:    "字体排印的三档缩放",
			Summary:  "100%、112.5%、125%：为什么是这三个档位。",
			Content:  "无障碍设计里字体缩放档位不宜太多，三档循环是浏览效率和可读性的平衡点……",
			Category: "Design",
			Tags:     []string{"#排印", "无障碍"},
			Author:   "阿梅",
			Date:     "2025-04-22",
			Views:    542,
			Likes:    45,
		},
		{
			ID:       "a-006",
			Title:    "防抖与节流：搜索框的最后一公里",
			Summary:  "输入停止 300ms 再发请求，过期响应直接丢弃。",
			Content:  "搜索框的体验问题九成出在时序上：请求乱序返回时旧结果覆盖新结果……",
			Category: "Tech",
			Tags:     []string{"#防抖", "#节流", "搜索"},
			Author:   "阿梅",
			Date:     "2025-04-01",
			Views:    980,
			Likes:    101,
		},
		{
			ID:       "a-005",
			Title:    "春日限定：站点的节日彩蛋",
			Summary:  "樱花飘落开关背后的小心思。",
			Content:  "节日装饰做成可关闭的开关，既保留仪式感，也尊重不喜欢动效的访客……",
			Category: "Life",
			Tags:     []string{"彩蛋", "#节日"},
			Author:   "阿梅",
			Date:     "2025-03-20",
			Views:    433,
			Likes:    66,
		},
		{
			ID:       "a-004",
			Title:    "修为等级与评论区门槛",
			Summary:  "炼气期只能点赞，筑基期才能评论：一个玩笑式的权限系统。",
			Content:  "把论坛等级包装成修仙境界之后，用户升级的动力意外地强……",
			Category: "Life",
			Tags:     []string{"#社区", "等级"},
			Author:   "阿梅",
			Date:     "2025-03-02",
			Views:    1502,
			Likes:    233,
			FavoredBy: []string{
				"u-vip-1",
			},
		},
		{
			ID:       "a-003",
			Title:    "卡片阴影的四层景深",
			Summary:  "悬浮、按下、聚焦、静止，每层阴影都有自己的职责。",
			Content:  "Material 的阴影体系值得借鉴但不必照搬，博客站点只需要四层……",
			Category: "Design",
			Tags:     []string{"#阴影", "视觉"},
			Author:   "阿梅",
			Date:     "2025-02-14",
			Views:    765,
			Likes:    59,
		},
		{
			ID:       "a-002",
			Title:    "AI 助手的用量计费实验",
			Summary:  "每次调用计一次数，服务端计数为准，客户端永远不自增。",
			Content:  "用量计数看起来是个简单的 +1，并发场景下丢失更新的坑却不少……",
			Category: "Tech",
			Tags:     []string{"#AI", "计费"},
			Author:   "阿梅",
			Date:     "2025-01-28",
			Views:    1208,
			Likes:    97,
		},
		{
			ID:       "a-001",
			Title:    "博客开张：为什么又造了一个轮子",
			Summary:  "市面上的博客系统很多，但自己的博客值得自己写。",
			Content:  "这是本站的第一篇文章。写博客系统本身就是一种写作……",
			Category: "Music",
			Tags:     []string{"随笔"},
			Author:   "阿梅",
			Date:     "2025-01-01",
			Views:    2011,
			Likes:    310,
		},
	}
}

func seedSongs() []model.Song {
	return []model.Song{
		{ID: "s-001", Title: "夜航星", Artist: "河图", Cover: "/covers/yehangxing.jpg", URL: "/audio/yehangxing.mp3", Duration: 261},
		{ID: "s-002", Title: "不染", Artist: "毛不易", Cover: "/covers/buran.jpg", URL: "/audio/buran.mp3", Duration: 275},
		{ID: "s-003", Title: "Flower Dance", Artist: "DJ Okawari", Cover: "/covers/flowerdance.jpg", URL: "/audio/flowerdance.mp3", Duration: 263},
		{ID: "s-004", Title: "平凡之路", Artist: "朴树", Cover: "/covers/pingfan.jpg", URL: "/audio/pingfan.mp3", Duration: 302},
	}
}

func seedPosts() []model.Post {
	return []model.Post{
		{ID: "p-003", Author: "夜风", Avatar: "/avatars/yefeng.png", Content: "新的播放器动画太丝滑了，求教程！", Likes: 23, Comments: 5, Date: "2025-06-20"},
		{ID: "p-002", Author: "小鱼", Avatar: "/avatars/xiaoyu.png", Content: "签到第 30 天，筑基成功（大概）。", Likes: 45, Comments: 12, Date: "2025-06-19"},
		{ID: "p-001", Author: "阿梅", Avatar: "/avatars/amei.png", Content: "本周末服务器维护，评论可能延迟。", Likes: 67, Comments: 8, Date: "2025-06-18"},
	}
}

func seedAnnouncements() []model.Announcement {
	return []model.Announcement{
		{ID: "n-003", Title: "AI 助手上线", Content: "每位用户每日有免费调用额度，超出后请升级 VIP。", Type: "activity", Date: "2025-06-15"},
		{ID: "n-002", Title: "评论区规则更新", Content: "评论需达到筑基期，点赞不限等级。", Type: "info", Date: "2025-05-01"},
		{ID: "n-001", Title: "维护通知", Content: "本周六凌晨 2:00-4:00 例行维护。", Type: "warning", Date: "2025-04-10"},
	}
}

func seedHotTopics() []model.HotTopic {
	return []model.HotTopic{
		{ID: "h-001", Keyword: "深色模式", Heat: 9863},
		{ID: "h-002", Keyword: "状态机", Heat: 7421},
		{ID: "h-003", Keyword: "防抖", Heat: 6310},
		{ID: "h-004", Keyword: "瀑布流", Heat: 5204},
		{ID: "h-005", Keyword: "修为等级", Heat: 4988},
	}
}

func seedAIRecords() []model.AIRecord {
	return []model.AIRecord{
		{ID: "r-003", Title: "帮我总结这篇文章", Date: "2025-06-21"},
		{ID: "r-002", Title: "写一段播放器的状态机伪代码", Date: "2025-06-20"},
		{ID: "r-001", Title: "推荐几首适合写代码听的歌", Date: "2025-06-18"},
	}
}
