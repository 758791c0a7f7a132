package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"news-article-ai-api/internal/domain/entity"
	"news-article-ai-api/internal/interfaces/http/dto"
)

type generateOptions struct {
	tone   string
	length int
	out    string
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [headline]",
		Short: "Generate a news article from a headline",
		Long: `Generate a news article from a headline.

Examples:
  articlectl generate "City approves new park" --tone formal --length 300
  articlectl generate "Storm hits coast" --out ./articles/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headline := strings.Join(args, " ")
			if strings.TrimSpace(headline) == "" {
				return fmt.Errorf("please enter a headline first")
			}

			length := opts.length
			resp, err := root.client().Generate(cmd.Context(), dto.GenerateArticleRequest{
				Headline: headline,
				Tone:     string(entity.ParseTone(opts.tone)),
				Length:   &length,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(resp.Headline))
			fmt.Fprintln(w, metaStyle.Render(fmt.Sprintf("Generated on %s · %d words", resp.GeneratedAt, resp.WordCount)))
			fmt.Fprintln(w)
			fmt.Fprintln(w, bodyStyle.Render(resp.Article))

			if opts.out == "" {
				return nil
			}
			path, err := writeArticle(opts.out, resp.Article, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, successStyle.Render("Saved to "+path))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.tone, "tone", string(entity.ToneNeutral), "article tone: formal, neutral or casual")
	cmd.Flags().IntVar(&opts.length, "length", entity.DefaultArticleLength, "target length in words")
	cmd.Flags().StringVar(&opts.out, "out", "", "write the article to this file, or into this directory as article_YYYYMMDD_HHMMSS.txt")
	return cmd
}

// ArticleFileName 下载文件名，与 dashboard 一致
func ArticleFileName(t time.Time) string {
	return "article_" + t.Format("20060102_150405") + ".txt"
}

// writeArticle out 以路径分隔符结尾或为已存在目录时，写入其中的 ArticleFileName
func writeArticle(out, article string, now time.Time) (string, error) {
	path := out
	if strings.HasSuffix(out, "/") || strings.HasSuffix(out, string(os.PathSeparator)) {
		if err := os.MkdirAll(out, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
		path = filepath.Join(out, ArticleFileName(now))
	} else if info, err := os.Stat(out); err == nil && info.IsDir() {
		path = filepath.Join(out, ArticleFileName(now))
	}
	if err := os.WriteFile(path, []byte(article), 0o644); err != nil {
		return "", fmt.Errorf("write article: %w", err)
	}
	return path, nil
}
