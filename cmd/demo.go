package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plum/internal/api"
	"plum/internal/model"
	"plum/internal/pkg/kvstore"
	"plum/internal/pkg/token"
	"plum/internal/query"
	"plum/internal/storage"
	"plum/internal/store"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted session against the store",
	Long: `Build the in-memory dataset, the simulated request client and the
application store, then walk through a typical session: browse the
feed, log in, play a song, toggle the theme and report AI usage.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	flags := demoCmd.Flags()
	flags.String("user", "vip_mei", "login identifier (role derived from the name)")
	flags.String("state", "./data/state.json", "preference/token state file")

	_ = viper.BindPFlag("demo.user", flags.Lookup("user"))
	_ = viper.BindPFlag("session.state_path", flags.Lookup("state"))
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	local, err := kvstore.NewFile(cfg.Session.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}

	dataset := storage.NewDataset()
	minter := token.NewMinter(cfg.Session.TokenSecret, cfg.Session.TokenExpiry)
	client := query.NewClient(cfg.Network, dataset, minter, local)

	s := store.New(store.Deps{
		Prefs:    local,
		Users:    api.NewUserAPI(client),
		Articles: api.NewArticleAPI(client),
		AI:       api.NewAIAPI(client),
	}, store.Options{})
	defer s.Close()

	unsubscribe := s.Subscribe(func(st store.State) {
		log.Debug().
			Bool("dark_mode", st.DarkMode).
			Bool("playing", st.IsPlaying).
			Int("toasts", len(st.Toasts)).
			Msg("state changed")
	})
	defer unsubscribe()

	ctx := cmd.Context()
	articles := api.NewArticleAPI(client)
	music := api.NewMusicAPI(client)

	// 1. 浏览首页文章
	page, err := articles.List(ctx, model.ArticleQuery{Page: 1, Limit: 5})
	if err != nil {
		return err
	}
	log.Info().Int("total", page.Total).Int("pages", page.TotalPages).Msg("feed loaded")
	for _, a := range page.Items {
		log.Info().Str("id", a.ID).Str("category", a.Category).Msg(a.Title)
	}

	// 2. 未登录状态触发认证门卫
	s.RequireAuth(func() {
		log.Info().Msg("this callback must not run before login")
	})

	// 3. 登录
	user := viper.GetString("demo.user")
	if err := s.Login(ctx, user); err != nil {
		return err
	}
	st := s.State()
	log.Info().Str("name", st.User.Name).Str("role", st.User.Role.String()).
		Str("level", st.User.Level.String()).Msg("logged in")

	// 4. 播放一首歌
	songs, err := music.Songs(ctx)
	if err != nil {
		return err
	}
	if len(songs) > 0 {
		s.PlaySong(songs[0])
		s.TogglePlay()
		s.TogglePlay()
	}

	// 5. 主题与签到
	s.ToggleTheme()
	if err := s.CheckIn(ctx); err != nil {
		log.Warn().Err(err).Msg("check-in failed")
	}

	// 6. AI 用量上报
	if err := s.IncrementAiUsage(ctx); err != nil {
		return err
	}
	log.Info().Int("ai_usage", s.State().User.AIUsage).Msg("usage reported")

	// 7. 退出登录，等通知过期后收尾
	s.Logout()
	time.Sleep(100 * time.Millisecond)

	return nil
}
