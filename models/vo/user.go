package vo

import (
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
)

// UserVO 对外展示的用户信息，不含密码
type UserVO struct {
	ID               uint64     `json:"id"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	Nickname         string     `json:"nickname"`
	Sex              enums.Sex  `json:"sex"`
	Role             enums.Role `json:"role"`
	Photo            *string    `json:"photo"`
	Introduce        *string    `json:"introduce"`
	LastLogin        *time.Time `json:"last_login"`
	OriginalSchoolID *uint64    `json:"original_school_id"`
	TargetSchoolID   *uint64    `json:"target_school_id"`
	TargetSchool     *SchoolVO  `json:"targetSchool,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func NewUserVO(u *entities.User) *UserVO {
	if u == nil {
		return nil
	}
	out := &UserVO{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		Nickname:         u.Nickname,
		Sex:              u.Sex,
		Role:             u.Role,
		Photo:            u.Photo,
		Introduce:        u.Introduce,
		LastLogin:        u.LastLogin,
		OriginalSchoolID: u.OriginalSchoolID,
		TargetSchoolID:   u.TargetSchoolID,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if u.TargetSchool != nil {
		out.TargetSchool = NewSchoolVO(u.TargetSchool)
	}
	return out
}

// TokenVO 登录成功返回的令牌
type TokenVO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
