package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xingou/family-health-mcp/internal/common"
	"github.com/xingou/family-health-mcp/internal/logging"
	"github.com/xingou/family-health-mcp/internal/roster"
)

// ListMembersTool reports all registered family member names.
type ListMembersTool struct {
	directory *roster.DirectoryClient
	logger    logging.Logger
}

func NewListMembersTool(directory *roster.DirectoryClient, logger logging.Logger) *ListMembersTool {
	return &ListMembersTool{directory: directory, logger: logger}
}

func (t *ListMembersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_family_members",
		mcp.WithDescription("查询家庭的所有成员姓名，不需要输入参数。返回：我的家庭中一共有XX人，他们分别是XX"),
	)
}

func (t *ListMembersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := t.logger.With("request_id", uuid.NewString(), "tool", "list_family_members")

	entries, err := t.directory.FetchRoster(ctx)
	if err != nil {
		log.Error(ctx, "roster fetch failed", "error", err)
		if errors.Is(err, common.ErrNetwork) {
			return mcp.NewToolResultText(fmt.Sprintf("获取家庭成员失败：网络错误（%s）", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("获取家庭成员失败：%s", err)), nil
	}

	names := roster.Names(entries)
	log.Info(ctx, "roster listed", "members", len(names))

	if len(names) == 0 {
		return mcp.NewToolResultText("我的家庭中一共有0人，他们分别是"), nil
	}
	return mcp.NewToolResultText(
		fmt.Sprintf("我的家庭中一共有%d人，他们分别是%s", len(names), strings.Join(names, "、")),
	), nil
}
