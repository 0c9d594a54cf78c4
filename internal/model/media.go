package model

// Song 歌曲实体
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Cover    string `json:"cover"`
	URL      string `json:"url"`
	Duration int    `json:"duration"` // 秒
}
