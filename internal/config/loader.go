// Package config 提供配置加载功能
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// DefaultConfigFile 默认配置文件路径，可由 CONFIG_FILE 覆盖
const DefaultConfigFile = "configs/config.yaml"

// 直接映射的环境变量（与历史部署保持一致）
var envBindings = map[string]string{
	"llm.api_key":      "GOOGLE_API_KEY",
	"llm.model":        "GEMINI_MODEL",
	"llm.provider":     "LLM_PROVIDER",
	"llm.base_url":     "LLM_BASE_URL",
	"server.http.port": "PORT",
	"app.env":          "APP_ENV",
}

var envPlaceholder = regexp.MustCompile(`\${(\w+)(:([^}]*))?}`)

// Load 加载配置
// 按优先级加载：默认值 -> 配置文件 -> 环境配置文件 -> 环境变量
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}
	return LoadFile(path)
}

// LoadFile 从指定文件加载配置；文件不存在时仅使用默认值与环境变量
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 基础配置（可选）
	if err := loadConfigFile(v, path, true); err != nil {
		return nil, err
	}

	// 2. 环境特定配置（可选）
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if err := loadConfigFile(v, envFilePath(path, env), true); err != nil {
		return nil, err
	}

	// 3. 绑定环境变量 (直接覆盖)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envName := range envBindings {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", envName, err)
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()

	return &cfg, nil
}

// envFilePath configs/config.yaml -> configs/config.production.yaml
func envFilePath(path, env string) string {
	if strings.HasSuffix(path, ".yaml") {
		return strings.TrimSuffix(path, ".yaml") + "." + env + ".yaml"
	}
	return path + "." + env
}

// loadConfigFile 读取文件，执行环境变量替换，并加载到 viper
func loadConfigFile(v *viper.Viper, path string, optional bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	reader := strings.NewReader(expandEnv(string(content)))
	if v.ConfigFileUsed() == "" {
		if err := v.ReadConfig(reader); err != nil {
			return fmt.Errorf("failed to read processed config %s: %w", path, err)
		}
		v.SetConfigFile(path)
	} else {
		if err := v.MergeConfig(reader); err != nil {
			return fmt.Errorf("failed to merge processed config %s: %w", path, err)
		}
	}

	return nil
}

// expandEnv 替换字符串中的 ${VAR:default} 占位符；未定义且无默认值时替换为空串
func expandEnv(s string) string {
	return envPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		submatch := envPlaceholder.FindStringSubmatch(match)
		if val, ok := os.LookupEnv(submatch[1]); ok {
			return val
		}
		return submatch[3]
	})
}

// normalize 统一大小写与空白
func (c *Config) normalize() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	c.Generation.DefaultTone = strings.ToLower(strings.TrimSpace(c.Generation.DefaultTone))
}

// setDefaults 设置配置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "news-article-ai-api")
	v.SetDefault("app.version", "v1.0.0")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 8000)
	v.SetDefault("server.http.read_timeout", "15s")
	v.SetDefault("server.http.write_timeout", "120s")
	v.SetDefault("server.http.idle_timeout", "120s")
	v.SetDefault("server.http.shutdown_timeout", "30s")

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gemini-pro")
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("generation.default_tone", "neutral")
	v.SetDefault("generation.default_length", 500)
	v.SetDefault("generation.max_length", 5000)
	v.SetDefault("generation.tokens_per_word", 4)
	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.top_p", 0.8)
	v.SetDefault("generation.top_k", 40)

	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "json")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.endpoint", "localhost:4317")
	v.SetDefault("observability.tracing.sample_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("security.cors.allowed_origins", []string{"*"})
	v.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("security.cors.allowed_headers", []string{"Origin", "Content-Type", "X-Request-ID"})
}
