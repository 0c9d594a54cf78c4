package config

import (
	"errors"
	"time"
)

// Config 应用配置根结构
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Network NetworkConfig `mapstructure:"network"`
	Session SessionConfig `mapstructure:"session"`
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// NetworkConfig 模拟网络延迟配置
// 所有请求先经过拦截器延迟，再叠加对应方法的延迟，
// 用于还原真实网络下加载动画、防抖搜索等时序行为
type NetworkConfig struct {
	Interceptor time.Duration `mapstructure:"interceptor"`  // 拦截器延迟（GET/POST 共用）
	GetLatency  time.Duration `mapstructure:"get_latency"`  // GET 请求延迟
	PostLatency time.Duration `mapstructure:"post_latency"` // POST 请求延迟
}

// SessionConfig 会话配置
type SessionConfig struct {
	TokenSecret string        `mapstructure:"token_secret"` // 会话令牌密钥
	TokenExpiry time.Duration `mapstructure:"token_expiry"` // 会话令牌过期时间
	StatePath   string        `mapstructure:"state_path"`   // 本地偏好/令牌持久化文件路径
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Network.Interceptor < 0 || c.Network.GetLatency < 0 || c.Network.PostLatency < 0 {
		return errors.New("network latencies must be non-negative")
	}

	if c.Session.TokenSecret == "" {
		return errors.New("session token secret must not be empty")
	}

	if c.Session.TokenExpiry <= 0 {
		return errors.New("session token expiry must be positive")
	}

	return nil
}
