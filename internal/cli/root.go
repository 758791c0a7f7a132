// Package cli articlectl 命令行
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"news-article-ai-api/internal/client"
)

// ServerEnv 指定服务地址的环境变量
const ServerEnv = "ARTICLE_API_URL"

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#69B716")).Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E9E9F4"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
)

type rootOptions struct {
	server string
}

func (o *rootOptions) client() *client.Client {
	server := o.server
	if server == "" {
		server = os.Getenv(ServerEnv)
	}
	return client.New(server, nil)
}

// NewRootCommand 构建 articlectl 根命令
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "articlectl",
		Short: "articlectl - command line client for the news article generator",
		Long: `articlectl talks to a running article-api server.

The server address comes from --server, then ARTICLE_API_URL,
then defaults to http://localhost:8000.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", "", "article-api base URL")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newHealthCommand(opts))
	return cmd
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
