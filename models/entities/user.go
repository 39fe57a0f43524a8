package entities

import (
	"time"

	"github.com/Xushengqwer/forum_service/models/enums"
)

// User 论坛用户
// - 表名: users
// - target_school_id 外键指向 schools，学校删除时置空
// - original_school_id 只是记录，不建外键
type User struct {
	Model

	Email    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Username string `gorm:"type:varchar(45);not null;uniqueIndex"`
	// Password 只保存 bcrypt 哈希
	Password string     `gorm:"type:varchar(100);not null"`
	Nickname string     `gorm:"type:varchar(45);not null"`
	Sex      enums.Sex  `gorm:"type:tinyint;not null;default:0"`
	Role     enums.Role `gorm:"type:tinyint;not null;default:0;index"`

	Photo     *string `gorm:"type:varchar(255)"`
	Introduce *string `gorm:"type:text"`
	LastLogin *time.Time

	OriginalSchoolID *uint64
	TargetSchoolID   *uint64 `gorm:"index"`
	TargetSchool     *School `gorm:"foreignKey:TargetSchoolID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// IsAdmin 角色是否为管理员
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == enums.RoleAdmin
}
