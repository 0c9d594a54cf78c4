package storage

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"plum/internal/model"
)

func TestDatasetSeed(t *testing.T) {
	Convey("初始数据集包含完整的内容集合", t, func() {
		d := NewDataset()

		Convey("文章共 10 篇，其中 Design 分类 4 篇", func() {
			articles := d.Articles()
			So(len(articles), ShouldEqual, 10)

			design := 0
			for _, a := range articles {
				if a.Category == "Design" {
					design++
				}
			}
			So(design, ShouldEqual, 4)
		})

		Convey("其余集合均非空", func() {
			So(len(d.Songs()), ShouldBeGreaterThan, 0)
			So(len(d.Posts()), ShouldBeGreaterThan, 0)
			So(len(d.Announcements()), ShouldBeGreaterThan, 0)
			So(len(d.HotTopics()), ShouldBeGreaterThan, 0)
			So(len(d.AIRecords()), ShouldBeGreaterThan, 0)
		})
	})
}

func TestDatasetArticles(t *testing.T) {
	Convey("文章集合的所有权约束", t, func() {
		d := NewDataset()

		Convey("按ID查找命中与未命中", func() {
			a, ok := d.ArticleByID("a-010")
			So(ok, ShouldBeTrue)
			So(a.Category, ShouldEqual, "Design")

			_, ok = d.ArticleByID("a-999")
			So(ok, ShouldBeFalse)
		})

		Convey("插入新文章后排在最前", func() {
			d.InsertArticle(model.Article{ID: "a-new", Title: "新文章"})
			articles := d.Articles()
			So(len(articles), ShouldEqual, 11)
			So(articles[0].ID, ShouldEqual, "a-new")
		})

		Convey("读取返回副本，外部修改不影响数据集", func() {
			articles := d.Articles()
			articles[0].Title = "被篡改"

			again := d.Articles()
			So(again[0].Title, ShouldNotEqual, "被篡改")
		})
	})
}

func TestDatasetUsage(t *testing.T) {
	Convey("AI 使用计数是真累加器", t, func() {
		d := NewDataset()

		Convey("单次自增返回最新值", func() {
			So(d.IncrUsage("u-mei"), ShouldEqual, 1)
			So(d.IncrUsage("u-mei"), ShouldEqual, 2)
			So(d.Usage("u-mei"), ShouldEqual, 2)
			So(d.Usage("u-other"), ShouldEqual, 0)
		})

		Convey("并发自增不丢失任何一次更新", func() {
			const n = 100
			var wg sync.WaitGroup
			wg.Add(n)
			for i := 0; i < n; i++ {
				go func() {
					defer wg.Done()
					d.IncrUsage("u-conc")
				}()
			}
			wg.Wait()

			So(d.Usage("u-conc"), ShouldEqual, n)
		})
	})
}

func TestDatasetPoints(t *testing.T) {
	Convey("签到积分累计", t, func() {
		d := NewDataset()

		So(d.AddPoints("u-mei", 10), ShouldEqual, 10)
		So(d.AddPoints("u-mei", 10), ShouldEqual, 20)
		So(d.AddPoints("u-mei", 0), ShouldEqual, 20)
	})
}
