// Package client 文章生成 API 的 HTTP 客户端
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"news-article-ai-api/internal/interfaces/http/dto"
)

// DefaultBaseURL 默认服务地址
const DefaultBaseURL = "http://localhost:8000"

// APIError 服务端返回的非 2xx 响应
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// Client 文章生成 API 客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// New 创建客户端；hc 为空时使用带超时的默认客户端
func New(baseURL string, hc *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Generate 调用 POST /generate-article
func (c *Client) Generate(ctx context.Context, req dto.GenerateArticleRequest) (*dto.GenerateArticleResponse, error) {
	var out dto.GenerateArticleResponse
	if err := c.do(ctx, http.MethodPost, "/generate-article", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health 调用 GET /health
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	var out dto.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e dto.ErrorResponse
		if json.Unmarshal(raw, &e) != nil || e.Detail == "" {
			e.Detail = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: e.Detail}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
