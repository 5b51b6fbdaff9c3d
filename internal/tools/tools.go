// Package tools exposes the MCP tool surface: membership listing, the
// recent-window health record lookup, and the free-text health-data
// analysis. Each tool resolves errors into user-facing strings; tool
// handlers never return protocol-level errors for domain failures.
package tools

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultWindowDays = 3

// Fixed user-facing strings shared by the tools.
const (
	msgNameRequired   = "请提供要查询的姓名（小写拼音），例如：liuchengliang、tangxiaohan。"
	msgNameFormat     = "姓名格式不正确，请提供小写拼音（仅字母数字）。"
	msgDayNotInteger  = "参数 day 应为正整数（示例：3 表示近3天）。"
	msgDayNotPositive = "参数 day 必须为正整数（示例：3 表示近3天）。"
	msgEmptyRoster    = "未获取到家庭成员名单，请稍后重试或联系户主。"
)

// stringArg returns the named argument when it is a non-blank string.
func stringArg(args map[string]any, key string) (string, bool) {
	s, ok := args[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// parseDays interprets the day argument. Hosts may send it as a JSON
// number or as a numeric string; both are accepted, fractions truncate
// like an integer cast. A missing argument selects the default window.
func parseDays(v any) (int, error) {
	switch d := v.(type) {
	case nil:
		return defaultWindowDays, nil
	case float64:
		return int(d), nil
	case int:
		return d, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return 0, fmt.Errorf("day %q is not an integer", d)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported day value of type %T", v)
	}
}
