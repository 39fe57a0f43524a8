package dto

import "github.com/Xushengqwer/forum_service/models/enums"

// NameListQuery 后台按名称模糊筛选的分页参数（学校、分类）
type NameListQuery struct {
	PageQuery
	Name string `form:"name"`
}

// UserListQuery 后台用户列表
type UserListQuery struct {
	PageQuery
	Username string `form:"username"`
	Email    string `form:"email"`
}

// UserWriteRequest 后台创建/更新用户。创建时 email、username、password、nickname 必填。
type UserWriteRequest struct {
	Email            *string     `json:"email" binding:"omitempty,email,max=100"`
	Username         *string     `json:"username" binding:"omitempty,min=2,max=45"`
	Password         *string     `json:"password" binding:"omitempty,min=6,max=45"`
	Nickname         *string     `json:"nickname" binding:"omitempty,min=2,max=45"`
	Sex              *enums.Sex  `json:"sex" binding:"omitempty,oneof=0 1 2"`
	Role             *enums.Role `json:"role" binding:"omitempty,oneof=0 1 2"`
	Photo            *string     `json:"photo" binding:"omitempty,max=255"`
	Introduce        *string     `json:"introduce"`
	OriginalSchoolID *uint64     `json:"original_school_id"`
	TargetSchoolID   *uint64     `json:"target_school_id"`
}

// SchoolWriteRequest 后台学校
type SchoolWriteRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Number    *uint   `json:"number" binding:"omitempty,min=1"`
	Introduce *string `json:"introduce"`
}

// CategoryWriteRequest 后台分类，parent_id 为空表示顶级分类
type CategoryWriteRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	ParentID *uint64 `json:"parent_id"`
}

// SchoolCategoryWriteRequest 后台院校-分类关联
type SchoolCategoryWriteRequest struct {
	CategoryID    uint64 `json:"category_id" binding:"required"`
	SchoolID      uint64 `json:"school_id" binding:"required"`
	ExamFrequency *int   `json:"exam_frequency" binding:"omitempty,min=1,max=5"`
}

// ReactionWriteRequest 后台点赞/收藏关联行，content_id 兼容 post_id / question_id
type ReactionWriteRequest struct {
	PostID     uint64 `json:"post_id"`
	QuestionID uint64 `json:"question_id"`
	ContentID  uint64 `json:"content_id"`
	UserID     uint64 `json:"user_id" binding:"required"`
}

// Target 取出内容 id
func (r ReactionWriteRequest) Target() uint64 {
	switch {
	case r.PostID != 0:
		return r.PostID
	case r.QuestionID != 0:
		return r.QuestionID
	default:
		return r.ContentID
	}
}

// SchoolCategoryListQuery school_id 为 0 时列出全部
type SchoolCategoryListQuery struct {
	PageQuery
	SchoolID uint64 `form:"school_id"`
}
