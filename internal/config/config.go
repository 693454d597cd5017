package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config 客户端全局配置
type Config struct {
	// APIBaseURL 后端 REST 接口地址
	APIBaseURL string `mapstructure:"api_base_url"`
	// StateDir 本地状态目录（草稿、登录态都落在这里）
	StateDir string `mapstructure:"state_dir"`
	// MaxImageSizeMB 单张图片的体积上限（MB），超出即拒绝
	MaxImageSizeMB int `mapstructure:"max_image_size_mb"`
	// RequestTimeout 单次请求超时，重试/退避策略不在客户端做
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// Debug 调试日志开关
	Debug bool `mapstructure:"debug"`
}

// Load 加载配置
// 优先级：环境变量 (MARKETSPACE_*) > 配置文件 ($HOME/.marketspace/config.yaml) > 默认值
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("无法定位用户目录: %w", err)
	}
	defaultStateDir := filepath.Join(home, ".marketspace")

	v.SetDefault("api_base_url", "http://localhost:3333")
	v.SetDefault("state_dir", defaultStateDir)
	v.SetDefault("max_image_size_mb", 5)
	v.SetDefault("request_timeout", 20*time.Second)
	v.SetDefault("debug", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultStateDir)

	v.SetEnvPrefix("MARKETSPACE")
	v.AutomaticEnv()

	// 配置文件可以不存在，其余读取错误要暴露
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	return &cfg, nil
}
