// Package config 提供配置加载和管理功能
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"news-article-ai-api/pkg/errors"
)

// 支持的 LLM Provider
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Generation    GenerationConfig    `yaml:"generation" mapstructure:"generation"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// Addr 返回监听地址
func (c HTTPServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LLMConfig LLM 提供商配置
type LLMConfig struct {
	// Provider gemini（原生 generateContent）或 openai（OpenAI 兼容接口）
	Provider string        `yaml:"provider" mapstructure:"provider"`
	APIKey   string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string        `yaml:"base_url" mapstructure:"base_url"`
	Model    string        `yaml:"model" mapstructure:"model"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Configured 是否已配置凭证
func (c LLMConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// GenerationConfig 文章生成参数
type GenerationConfig struct {
	DefaultTone   string  `yaml:"default_tone" mapstructure:"default_tone"`
	DefaultLength int     `yaml:"default_length" mapstructure:"default_length"`
	MaxLength     int     `yaml:"max_length" mapstructure:"max_length"`
	TokensPerWord int     `yaml:"tokens_per_word" mapstructure:"tokens_per_word"`
	Temperature   float64 `yaml:"temperature" mapstructure:"temperature"`
	TopP          float64 `yaml:"top_p" mapstructure:"top_p"`
	TopK          int     `yaml:"top_k" mapstructure:"top_k"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	CORS CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}

// Validate 校验启动必需的配置
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigMissing.WithDetail("config is nil")
	}
	if !c.LLM.Configured() {
		return errors.ErrConfigMissing.WithError(fmt.Errorf("GOOGLE_API_KEY is not set"))
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("unsupported llm provider %q", c.LLM.Provider))
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("llm.model is required"))
	}
	if c.Server.HTTP.Port <= 0 || c.Server.HTTP.Port > 65535 {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("invalid port %d", c.Server.HTTP.Port))
	}

	g := c.Generation
	if g.DefaultLength <= 0 {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.default_length must be positive"))
	}
	if g.TokensPerWord <= 0 {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.tokens_per_word must be positive"))
	}
	if g.MaxLength < g.DefaultLength {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.max_length %d is below default_length %d", g.MaxLength, g.DefaultLength))
	}
	// max_length × tokens_per_word 即 maxOutputTokens，必须落在 int32 内
	if g.MaxLength > math.MaxInt32/g.TokensPerWord {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.max_length %d overflows the token budget", g.MaxLength))
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.temperature out of range: %v", g.Temperature))
	}
	if g.TopP <= 0 || g.TopP > 1 {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.top_p out of range: %v", g.TopP))
	}
	if g.TopK < 0 {
		return errors.ErrConfigInvalid.WithError(fmt.Errorf("generation.top_k must not be negative"))
	}
	return nil
}
