package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"news-article-ai-api/internal/application/article"
	"news-article-ai-api/internal/infrastructure/markdown"
	"news-article-ai-api/internal/interfaces/http/dto"
	"news-article-ai-api/pkg/errors"
)

const (
	generateInvalidPrefix = "Invalid article request"
	generateFailPrefix    = "Error generating article"
	renderInvalidPrefix   = "Invalid render request"
	renderFailPrefix      = "Error rendering article"
)

// ArticleHandler 文章生成处理器
type ArticleHandler struct {
	svc      *article.Service
	renderer *markdown.Renderer
}

// NewArticleHandler 创建文章生成处理器
func NewArticleHandler(svc *article.Service, renderer *markdown.Renderer) *ArticleHandler {
	return &ArticleHandler{svc: svc, renderer: renderer}
}

// GenerateArticle 根据标题生成新闻文章
// @Summary 生成文章
// @Tags Article
// @Accept json
// @Produce json
// @Param body body dto.GenerateArticleRequest true "标题/语气/长度"
// @Success 200 {object} dto.GenerateArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-article [post]
func (h *ArticleHandler) GenerateArticle(c *gin.Context) {
	var req dto.GenerateArticleRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, generateInvalidPrefix, generateFailPrefix)
		return
	}

	a, err := h.svc.Generate(c.Request.Context(), req.ToEntity(h.svc.DefaultLength()))
	if err != nil {
		respondError(c, err, generateInvalidPrefix, generateFailPrefix)
		return
	}

	dto.OK(c, dto.ToGenerateArticleResponse(a))
}

// RenderArticle 将文章 Markdown 渲染为 HTML，原始 HTML 不输出
// @Summary 渲染文章
// @Tags Article
// @Accept json
// @Produce json
// @Param body body dto.RenderArticleRequest true "文章正文"
// @Success 200 {object} dto.RenderArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /render-article [post]
func (h *ArticleHandler) RenderArticle(c *gin.Context) {
	var req dto.RenderArticleRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, renderInvalidPrefix, renderFailPrefix)
		return
	}
	if strings.TrimSpace(req.Article) == "" {
		respondError(c, errors.ErrInvalidParam.WithError(fmt.Errorf("article must not be empty")), renderInvalidPrefix, renderFailPrefix)
		return
	}

	html, err := h.renderer.Render(req.Article)
	if err != nil {
		respondError(c, errors.Wrap(err, errors.CodeRenderFailed, "render failed"), renderInvalidPrefix, renderFailPrefix)
		return
	}

	dto.OK(c, dto.RenderArticleResponse{HTML: html})
}
