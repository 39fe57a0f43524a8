package dto

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Xushengqwer/forum_service/constant"
)

// PageQuery 列表接口共用的分页参数，原样接收字符串，由 Resolve 做宽松转换。
// - 非数字或 0 使用默认值 (1 / 10)
// - 负数取绝对值
// - 超过 constant.MaxPageValue 的值 (含溢出 int 的) 按上限处理
type PageQuery struct {
	CurrentPage string `form:"currentPage"`
	PageSize    string `form:"pageSize"`
}

// Page 转换后的分页参数
type Page struct {
	CurrentPage int
	PageSize    int
}

func (q PageQuery) Resolve() Page {
	return Page{
		CurrentPage: coercePositive(q.CurrentPage, constant.DefaultCurrentPage),
		PageSize:    coercePositive(q.PageSize, constant.DefaultPageSize),
	}
}

// Offset (currentPage - 1) * pageSize，溢出时取 math.MaxInt
func (p Page) Offset() int {
	if p.CurrentPage <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.CurrentPage-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.CurrentPage - 1) * p.PageSize
}

func (p Page) Limit() int {
	return p.PageSize
}

func coercePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		// 超出 int 范围时 Atoi 返回 ErrRange，正负都按上限处理
		if errors.Is(err, strconv.ErrRange) {
			return constant.MaxPageValue
		}
		return fallback
	}
	if n == 0 {
		return fallback
	}
	// math.MinInt 取反仍为负数，先比较再取绝对值
	if n > constant.MaxPageValue || n < -constant.MaxPageValue {
		return constant.MaxPageValue
	}
	if n < 0 {
		n = -n
	}
	return n
}
