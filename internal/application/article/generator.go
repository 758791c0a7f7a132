package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"news-article-ai-api/internal/config"
	"news-article-ai-api/internal/domain/entity"
	llmctx "news-article-ai-api/internal/domain/service"
	workflowchain "news-article-ai-api/internal/workflow/chain"
	wfmodel "news-article-ai-api/internal/workflow/model"
	workflowport "news-article-ai-api/internal/workflow/port"
	"news-article-ai-api/pkg/errors"
	"news-article-ai-api/pkg/logger"
	"news-article-ai-api/pkg/metrics"
	"news-article-ai-api/pkg/tracer"
)

const statusHealthy = "healthy"

// HealthStatus 健康检查结果，不涉及任何 I/O
type HealthStatus struct {
	Status        string
	Model         string
	APIConfigured bool
}

// Service 文章生成服务。请求之间不共享可变状态。
type Service struct {
	factory workflowport.ChatModelFactory
	chain   *workflowchain.ArticleChain
	llm     config.LLMConfig
	gen     config.GenerationConfig
	now     func() time.Time
}

// NewService 创建文章生成服务
func NewService(factory workflowport.ChatModelFactory, recorder llmctx.LLMUsageRecorder, cfg *config.Config) *Service {
	return &Service{
		factory: factory,
		chain:   workflowchain.NewArticleChain(factory, recorder),
		llm:     cfg.LLM,
		gen:     cfg.Generation,
		now:     time.Now,
	}
}

// WithClock 替换时间源（测试用）
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

// DefaultLength 请求未指定长度时使用的目标词数
func (s *Service) DefaultLength() int {
	if s.gen.DefaultLength > 0 {
		return s.gen.DefaultLength
	}
	return entity.DefaultArticleLength
}

// MaxLength 允许的最大目标词数
func (s *Service) MaxLength() int {
	if s.gen.MaxLength > 0 {
		return s.gen.MaxLength
	}
	return entity.MaxArticleLength
}

// DefaultTone 请求未指定语气时使用的语气
func (s *Service) DefaultTone() entity.Tone {
	return entity.ParseTone(s.gen.DefaultTone)
}

// Generate 校验请求、构造 prompt、调用模型一次并组装文章
func (s *Service) Generate(ctx context.Context, req entity.ArticleRequest) (*entity.Article, error) {
	tone := s.DefaultTone()
	if strings.TrimSpace(string(req.Tone)) != "" {
		tone = entity.ParseTone(string(req.Tone))
	}

	if err := validateRequest(req, s.MaxLength()); err != nil {
		metrics.ArticleGenerationTotal.WithLabelValues(tone.String(), "invalid").Inc()
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "article.generate", trace.WithAttributes(
		attribute.String("article.tone", tone.String()),
		attribute.Int("article.length", req.Length),
	))
	defer span.End()

	start := time.Now()
	headline := strings.TrimSpace(req.Headline)
	out, err := s.chain.Invoke(ctx, &wfmodel.ArticleGenerateInput{
		Prompt:   BuildPrompt(headline, tone),
		Provider: s.llm.Provider,
		Model:    s.llm.Model,
		Sampling: s.sampling(req.Length),
	})
	metrics.ArticleGenerationDuration.WithLabelValues(tone.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ArticleGenerationTotal.WithLabelValues(tone.String(), "error").Inc()
		tracer.RecordError(span, err)
		if !errors.IsAppError(err) {
			err = errors.ErrInternalError.WithError(err)
		}
		return nil, err
	}

	article := entity.NewArticle(req.Headline, out.Content, tone, s.now())
	article.Metadata = entity.GenerationMetadata{
		Provider:         out.Meta.Provider,
		Model:            out.Meta.Model,
		PromptTokens:     out.Meta.PromptTokens,
		CompletionTokens: out.Meta.CompletionTokens,
		FinishReason:     out.Meta.FinishReason,
	}

	metrics.ArticleGenerationTotal.WithLabelValues(tone.String(), "success").Inc()
	metrics.ArticleWordCount.WithLabelValues(tone.String()).Observe(float64(article.WordCount))
	span.SetAttributes(attribute.Int("article.word_count", article.WordCount))

	logger.Info(ctx, "article generated",
		"tone", tone.String(),
		"length", req.Length,
		"word_count", article.WordCount,
		"provider", out.Meta.Provider,
		"model", out.Meta.Model,
		"duration_ms", out.Meta.Duration.Milliseconds(),
	)
	return article, nil
}

// Health 返回当前模型配置，不访问网络
func (s *Service) Health() HealthStatus {
	return HealthStatus{
		Status:        statusHealthy,
		Model:         s.llm.Model,
		APIConfigured: s.llm.Configured(),
	}
}

// Ready 凭证已配置且能构建 ChatModel 时返回 nil
func (s *Service) Ready(ctx context.Context) error {
	if !s.llm.Configured() {
		return errors.ErrServiceUnavailable.WithDetail("GOOGLE_API_KEY is not set")
	}
	if _, err := s.factory.Get(ctx, s.llm.Provider); err != nil {
		return errors.ErrServiceUnavailable.WithError(err)
	}
	return nil
}

func (s *Service) sampling(length int) wfmodel.Sampling {
	perWord := s.gen.TokensPerWord
	if perWord <= 0 {
		perWord = 4
	}
	return wfmodel.Sampling{
		Temperature: float32(s.gen.Temperature),
		TopP:        float32(s.gen.TopP),
		TopK:        s.gen.TopK,
		MaxTokens:   length * perWord,
	}
}

func validateRequest(req entity.ArticleRequest, maxLength int) error {
	if strings.TrimSpace(req.Headline) == "" {
		return errors.ErrInvalidParam.WithError(fmt.Errorf("headline must not be empty"))
	}
	if req.Length <= 0 {
		return errors.ErrInvalidParam.WithError(fmt.Errorf("length must be a positive integer, got %d", req.Length))
	}
	if req.Length > maxLength {
		return errors.ErrInvalidParam.WithError(fmt.Errorf("length must not exceed %d words, got %d", maxLength, req.Length))
	}
	return nil
}
