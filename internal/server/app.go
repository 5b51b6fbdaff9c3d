// Package server assembles and runs the family health MCP server. It wires
// configuration, logging, the service clients, and the tool handlers, and
// serves them over the stdio transport until the context is cancelled.
package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/xingou/family-health-mcp/internal/health"
	"github.com/xingou/family-health-mcp/internal/logging"
	"github.com/xingou/family-health-mcp/internal/retrieval"
	"github.com/xingou/family-health-mcp/internal/roster"
	"github.com/xingou/family-health-mcp/internal/server/config"
	"github.com/xingou/family-health-mcp/internal/tools"
	"github.com/xingou/family-health-mcp/internal/translit"
)

// Version is set at build time via ldflags.
var Version = "dev"

const instructions = "家庭健康互查服务：先通过姓名（小写拼音或中文）校验家庭成员身份，" +
	"校验通过后才可查询该成员的近期健康记录或检索历史健康数据。" +
	"非家庭成员的查询会被拒绝。"

type App struct {
	config *config.Config
	logger logging.Logger
	mcp    *mcpserver.MCPServer
}

// NewApp builds the composition root: every client and tool is created
// here and nowhere else. Logs go to stderr; stdout belongs to the MCP
// framing.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	canon := roster.NewCanonicalizer(translit.NewPinyin())
	resolver := roster.NewResolver(canon)

	directory := roster.NewDirectoryClient(cfg.DirectoryBaseURL, cfg.FamilyName, cfg.HTTPTimeout, logger)
	healthClient := health.NewClient(cfg.MetricsURLTemplate, cfg.HTTPTimeout)
	retrievalClient := retrieval.NewClient(cfg.RetrievalURL, cfg.HTTPTimeout)

	s := mcpserver.NewMCPServer(
		"family-health-monitor",
		Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(instructions),
	)

	listTool := tools.NewListMembersTool(directory, logger)
	s.AddTool(listTool.Definition(), listTool.Handle)

	recentTool := tools.NewRecentRecordsTool(directory, resolver, canon, healthClient, logger)
	s.AddTool(recentTool.Definition(), recentTool.Handle)

	analyzeTool := tools.NewAnalyzeTool(directory, resolver, canon, retrievalClient, logger)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	return &App{config: cfg, logger: logger, mcp: s}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves MCP requests over stdin/stdout until the context is
// cancelled or stdin closes.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "starting family health MCP server",
		"family", app.config.FamilyName, "version", Version)

	stdio := mcpserver.NewStdioServer(app.mcp)
	stdio.SetErrorLogger(log.New(os.Stderr, "", log.LstdFlags))

	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error(ctx, "server stopped", "error", err)
		return
	}

	app.logger.Info(ctx, "server exited")
}
