package dto

import "github.com/Xushengqwer/forum_service/models/enums"

// SignUpRequest 前台注册
type SignUpRequest struct {
	Email    string    `json:"email" binding:"required,email,max=100"`
	Username string    `json:"username" binding:"required,min=2,max=45"`
	Password string    `json:"password" binding:"required,min=6,max=45"`
	Nickname string    `json:"nickname" binding:"required,min=2,max=45"`
	Sex      enums.Sex `json:"sex" binding:"omitempty,oneof=0 1 2"`

	OriginalSchoolID *uint64 `json:"original_school_id"`
	TargetSchoolID   *uint64 `json:"target_school_id"`
}

// SignInRequest login 可以是邮箱或用户名
type SignInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
