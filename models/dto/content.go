package dto

import (
	"github.com/Xushengqwer/forum_service/models/enums"
)

// ContentListQuery 帖子/问答列表查询参数
type ContentListQuery struct {
	PageQuery
	Title   string `form:"title"`
	Content string `form:"content"`
}

// ContentWriteRequest 创建与更新共用的请求体。
// - 创建时 title 与 content 必填（去除首尾空白后非空），由服务层校验并给出逐字段信息
// - 更新时只修改提供了的字段
// - school_id 只对帖子生效，category_id 与 difficulty 只对问答生效
// - status 与 is_recommended 仅管理员可设置
type ContentWriteRequest struct {
	Title      *string            `json:"title" binding:"omitempty,max=255"`
	Content    *string            `json:"content"`
	SchoolID   *uint64            `json:"school_id"`
	CategoryID *uint64            `json:"category_id"`
	ParentID   *uint64            `json:"parent_id"`
	Video      *string            `json:"video" binding:"omitempty,max=255"`
	CoverImage *string            `json:"cover_image" binding:"omitempty,max=255"`
	Type       *enums.ContentType `json:"type" binding:"omitempty,oneof=1 2 3 4"`
	Difficulty *int               `json:"difficulty"`

	Status        *enums.ContentStatus `json:"status" binding:"omitempty,oneof=published draft archived"`
	IsRecommended *bool                `json:"is_recommended"`
}

// ReactionToggleRequest 点赞/收藏切换。
// 前台按内容类型传 postId 或 questionId，contentId 作为通用写法。
type ReactionToggleRequest struct {
	PostID     uint64 `json:"postId"`
	QuestionID uint64 `json:"questionId"`
	ContentID  uint64 `json:"contentId"`
}

// Target 按内容类型取出目标 id，未传时为 0
func (r ReactionToggleRequest) Target(idField string) uint64 {
	switch idField {
	case "postId":
		if r.PostID != 0 {
			return r.PostID
		}
	case "questionId":
		if r.QuestionID != 0 {
			return r.QuestionID
		}
	}
	return r.ContentID
}
