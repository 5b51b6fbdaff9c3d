package report

import (
	"fmt"
	"strings"

	"github.com/xingou/family-health-mcp/internal/retrieval"
	"github.com/xingou/family-health-mcp/internal/roster"
)

// Retrieval renders the free-text analysis report. userQuery is the
// caller's original question, used when the service does not echo a
// (possibly corrected) query back.
func Retrieval(m roster.Member, userQuery string, resp *retrieval.Response) string {
	query := resp.Query
	if query == "" {
		query = userQuery
	}

	var b strings.Builder
	fmt.Fprintf(&b, "查询用户: %s (UID: %s)\n", m.DisplayName, m.ID)
	fmt.Fprintf(&b, "查询问题: %s\n", query)
	fmt.Fprintf(&b, "处理时间: %.4f秒\n\n", resp.ProcessingTime)
	b.WriteString("相关健康数据分析结果：\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for i, hit := range resp.TopResults {
		fmt.Fprintf(&b, "\n【匹配结果 %d】\n", i+1)
		fmt.Fprintf(&b, "科室: %s\n", hit.Department)
		fmt.Fprintf(&b, "相似度: %.4f\n", hit.Score)
		fmt.Fprintf(&b, "原文: %s\n", hit.OriginalText)
		b.WriteString("总结:\n")
		for _, item := range hit.Summary {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}

	return strings.TrimSpace(b.String())
}
