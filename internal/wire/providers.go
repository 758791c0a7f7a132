package wire

import (
	"github.com/google/wire"

	"news-article-ai-api/internal/application/article"
	llmctx "news-article-ai-api/internal/domain/service"
	"news-article-ai-api/internal/infrastructure/llm"
	"news-article-ai-api/internal/infrastructure/markdown"
	"news-article-ai-api/internal/interfaces/http/handler"
	"news-article-ai-api/internal/interfaces/http/router"
	workflowport "news-article-ai-api/internal/workflow/port"
)

// LLMSet 模型工厂提供者集合
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(workflowport.ChatModelFactory), new(*llm.EinoFactory)),
	llm.NewMetricsUsageRecorder,
	wire.Bind(new(llmctx.LLMUsageRecorder), new(*llm.MetricsUsageRecorder)),
)

// ArticleSet 文章生成提供者集合
var ArticleSet = wire.NewSet(
	article.NewService,
	markdown.NewRenderer,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewArticleHandler,
	handler.NewHealthHandler,
	handler.NewDashboardHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
