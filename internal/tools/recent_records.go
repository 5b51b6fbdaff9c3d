package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xingou/family-health-mcp/internal/common"
	"github.com/xingou/family-health-mcp/internal/health"
	"github.com/xingou/family-health-mcp/internal/logging"
	"github.com/xingou/family-health-mcp/internal/report"
	"github.com/xingou/family-health-mcp/internal/roster"
)

// RecentRecordsTool resolves the caller to a family member and returns the
// member's health records over the last N days. Unresolved names are
// rejected before any health data is touched.
type RecentRecordsTool struct {
	directory *roster.DirectoryClient
	resolver  *roster.Resolver
	canon     *roster.Canonicalizer
	health    *health.Client
	logger    logging.Logger
}

func NewRecentRecordsTool(
	directory *roster.DirectoryClient,
	resolver *roster.Resolver,
	canon *roster.Canonicalizer,
	healthClient *health.Client,
	logger logging.Logger,
) *RecentRecordsTool {
	return &RecentRecordsTool{
		directory: directory,
		resolver:  resolver,
		canon:     canon,
		health:    healthClient,
		logger:    logger,
	}
}

func (t *RecentRecordsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_health_records_by_recent_days",
		mcp.WithDescription("家庭互查：按“近 N 天”查询家庭成员的健康记录。命中家庭成员时返回多板块格式的近 N 天记录；未命中时返回注册提示。"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("成员姓名，小写拼音或中文（如 liuchengliang、tangxiaohan）"),
		),
		mcp.WithNumber("day",
			mcp.DefaultNumber(defaultWindowDays),
			mcp.Description("近 N 天，正整数，默认 3"),
		),
	)
}

func (t *RecentRecordsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := t.logger.With("request_id", uuid.NewString(), "tool", "get_health_records_by_recent_days")
	args := req.GetArguments()

	name, ok := stringArg(args, "name")
	if !ok {
		return mcp.NewToolResultText(msgNameRequired), nil
	}

	days, err := parseDays(args["day"])
	if err != nil {
		return mcp.NewToolResultText(msgDayNotInteger), nil
	}
	if days <= 0 {
		return mcp.NewToolResultText(msgDayNotPositive), nil
	}

	key := t.canon.Canonicalize(name)
	if key == "" {
		return mcp.NewToolResultText(msgNameFormat), nil
	}

	log.Info(ctx, "family lookup started", "name", key, "days", days)

	entries, err := t.directory.FetchRoster(ctx)
	if err != nil {
		log.Error(ctx, "roster fetch failed", "error", err)
		if errors.Is(err, common.ErrNetwork) {
			return mcp.NewToolResultText(fmt.Sprintf("获取家庭名单失败：网络错误（%s）", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("获取家庭名单失败：%s", err)), nil
	}

	members := t.resolver.Members(entries)
	if len(members) == 0 {
		return mcp.NewToolResultText(msgEmptyRoster), nil
	}

	member, ok := t.resolver.Match(name, members)
	if !ok {
		return mcp.NewToolResultText("您不是我的家庭成员，请找户主注册。"), nil
	}

	rec, err := t.health.FetchRecords(ctx, member.ID, days)
	if err != nil {
		log.Error(ctx, "health records fetch failed", "uid", member.ID, "error", err)
		var bizErr *health.BusinessError
		if errors.As(err, &bizErr) {
			return mcp.NewToolResultText(bizErr.Error()), nil
		}
		if errors.Is(err, common.ErrNetwork) {
			return mcp.NewToolResultText(fmt.Sprintf("获取健康数据失败：网络错误（%s）", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("获取健康数据失败：%s", err)), nil
	}

	log.Info(ctx, "health records formatted", "uid", member.ID)
	return mcp.NewToolResultText(report.Metrics(member.DisplayName, days, rec)), nil
}
