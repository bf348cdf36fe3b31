// Package dto 定义各实体的请求结构
// 每个请求结构即该实体的字段白名单：请求里多余的字段一律丢弃，
// 关联对象永远不可经由请求写入
package dto

import (
	"fmt"
	"time"
)

// 日期字段统一使用 2006-01-02 格式的字符串
const dateLayout = "2006-01-02"

// parseDate 解析日期字符串，空串视为零值日期
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式错误（应为 2006-01-02）: %s", s)
	}
	return t, nil
}
