package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"news-article-ai-api/pkg/errors"
)

// clearEnv 屏蔽宿主机上可能存在的变量
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GOOGLE_API_KEY", "GEMINI_MODEL", "LLM_PROVIDER", "LLM_BASE_URL", "PORT", "APP_ENV", "CONFIG_FILE"} {
		// t.Setenv 负责在测试结束后恢复原值，随后再真正移除
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadFile_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTP.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Server.HTTP.Port)
	}
	if cfg.LLM.APIKey != "test-key" || !cfg.LLM.Configured() {
		t.Errorf("api key not bound from GOOGLE_API_KEY: %+v", cfg.LLM)
	}
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.Model != "gemini-pro" {
		t.Errorf("unexpected llm defaults: %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
	g := cfg.Generation
	if g.DefaultLength != 500 || g.MaxLength != 5000 || g.TokensPerWord != 4 || g.TopK != 40 || g.Temperature != 0.7 || g.TopP != 0.8 || g.DefaultTone != "neutral" {
		t.Errorf("unexpected generation defaults: %+v", g)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LLM.Configured() {
		t.Fatal("api key should be empty")
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.IsKind(err, errors.KindConfiguration) {
		t.Errorf("expected configuration kind, got %v", err)
	}
}

func TestLoadFile_FileThenEnvOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
server:
  http:
    port: 9000
llm:
  api_key: ${GOOGLE_API_KEY}
  model: ${GEMINI_MODEL:gemini-1.5-flash}
generation:
  tokens_per_word: 3
`)
	t.Setenv("GOOGLE_API_KEY", "from-env")
	t.Setenv("PORT", "9100")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTP.Port != 9100 {
		t.Errorf("PORT should override file, got %d", cfg.Server.HTTP.Port)
	}
	if cfg.LLM.Model != "gemini-1.5-flash" {
		t.Errorf("placeholder default not applied: %q", cfg.LLM.Model)
	}
	if cfg.LLM.APIKey != "from-env" {
		t.Errorf("api key = %q", cfg.LLM.APIKey)
	}
	if cfg.Generation.TokensPerWord != 3 {
		t.Errorf("tokens_per_word = %d", cfg.Generation.TokensPerWord)
	}
}

func TestLoadFile_EnvSpecificMerge(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
observability:
  logging:
    level: info
`)
	writeFile(t, dir, "config.production.yaml", `
observability:
  logging:
    level: warn
`)
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Observability.Logging.Level != "warn" {
		t.Errorf("env file not merged, level = %q", cfg.Observability.Logging.Level)
	}
	if cfg.App.Env != "production" {
		t.Errorf("app.env = %q", cfg.App.Env)
	}
}

func TestValidate_Ranges(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{HTTP: HTTPServerConfig{Port: 8000}},
			LLM:    LLMConfig{Provider: ProviderGemini, APIKey: "k", Model: "gemini-pro"},
			Generation: GenerationConfig{
				DefaultLength: 500, MaxLength: 5000, TokensPerWord: 4, Temperature: 0.7, TopP: 0.8, TopK: 40,
			},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}

	cases := map[string]func(*Config){
		"provider": func(c *Config) { c.LLM.Provider = "anthropic" },
		"model":    func(c *Config) { c.LLM.Model = "" },
		"port":     func(c *Config) { c.Server.HTTP.Port = 0 },
		"tokens":   func(c *Config) { c.Generation.TokensPerWord = 0 },
		"top_p":    func(c *Config) { c.Generation.TopP = 1.5 },
		"temp":     func(c *Config) { c.Generation.Temperature = -1 },
		"top_k":    func(c *Config) { c.Generation.TopK = -1 },
		"length":   func(c *Config) { c.Generation.DefaultLength = 0 },
		"max_low":  func(c *Config) { c.Generation.MaxLength = 100 },
		"max_big":  func(c *Config) { c.Generation.MaxLength = 600_000_000 },
	}
	for name, mutate := range cases {
		c := base()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("NEWS_TEST_SET", "x")
	got := expandEnv("a=${NEWS_TEST_SET} b=${NEWS_TEST_UNSET:dflt} c=${NEWS_TEST_UNSET}")
	if got != "a=x b=dflt c=" {
		t.Errorf("expandEnv = %q", got)
	}
}
