package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xingou/family-health-mcp/internal/common"
	"github.com/xingou/family-health-mcp/internal/logging"
	"github.com/xingou/family-health-mcp/internal/report"
	"github.com/xingou/family-health-mcp/internal/retrieval"
	"github.com/xingou/family-health-mcp/internal/roster"
)

// AnalyzeTool answers free-text questions about a family member's
// historical health data. Membership is verified first; only resolved
// members reach the retrieval service.
type AnalyzeTool struct {
	directory *roster.DirectoryClient
	resolver  *roster.Resolver
	canon     *roster.Canonicalizer
	retrieval *retrieval.Client
	logger    logging.Logger
}

func NewAnalyzeTool(
	directory *roster.DirectoryClient,
	resolver *roster.Resolver,
	canon *roster.Canonicalizer,
	retrievalClient *retrieval.Client,
	logger logging.Logger,
) *AnalyzeTool {
	return &AnalyzeTool{
		directory: directory,
		resolver:  resolver,
		canon:     canon,
		retrieval: retrievalClient,
		logger:    logger,
	}
}

func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_health_data",
		mcp.WithDescription("当用户询问历史健康数据（如体检数据或其他文本信息）时调用。先校验是否为家庭成员，只有家庭成员才允许检索。"),
		mcp.WithString("user_name",
			mcp.Required(),
			mcp.Description("用户姓名，小写拼音或中文（如 liuchengliang、tangxiaohan）"),
		),
		mcp.WithString("user_query",
			mcp.Required(),
			mcp.Description("用户查询字符串，将传给检索服务"),
		),
	)
}

func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := t.logger.With("request_id", uuid.NewString(), "tool", "analyze_health_data")
	args := req.GetArguments()

	name, ok := stringArg(args, "user_name")
	if !ok {
		return mcp.NewToolResultText(msgNameRequired), nil
	}
	userQuery, _ := args["user_query"].(string)

	key := t.canon.Canonicalize(name)
	if key == "" {
		return mcp.NewToolResultText(msgNameFormat), nil
	}

	entries, err := t.directory.FetchRoster(ctx)
	if err != nil {
		log.Error(ctx, "roster fetch failed", "error", err)
		return mcp.NewToolResultText(failureText(err)), nil
	}

	members := t.resolver.Members(entries)
	if len(members) == 0 {
		return mcp.NewToolResultText(msgEmptyRoster), nil
	}

	member, ok := t.resolver.Match(name, members)
	if !ok {
		return mcp.NewToolResultText("您不是我们的家庭成员，请找户主注册。"), nil
	}

	log.Info(ctx, "member matched, querying retrieval service",
		"member", member.DisplayName, "uid", member.ID, "query", userQuery)

	resp, err := t.retrieval.Query(ctx, member.ID, userQuery)
	if err != nil {
		log.Error(ctx, "retrieval query failed", "uid", member.ID, "error", err)
		var statusErr *retrieval.StatusError
		if errors.As(err, &statusErr) {
			return mcp.NewToolResultText(statusErr.Error()), nil
		}
		return mcp.NewToolResultText(failureText(err)), nil
	}

	log.Info(ctx, "health data analysis completed", "member", member.DisplayName)
	return mcp.NewToolResultText(report.Retrieval(member, userQuery, resp)), nil
}

// failureText maps an internal error to the analysis tool's user-facing
// failure string.
func failureText(err error) string {
	if errors.Is(err, common.ErrNetwork) {
		return fmt.Sprintf("网络连接错误：%s", err)
	}
	return fmt.Sprintf("健康数据分析过程中发生未知错误：%s", err)
}
