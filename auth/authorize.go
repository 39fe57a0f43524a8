package auth

import (
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/myErrors"
)

// Authorize 检查用户是否具备指定角色。
// - nil 用户视为未登录
// - 被封禁用户不具备任何角色
func Authorize(user *entities.User, required enums.Role) error {
	if user == nil {
		return myErrors.NewUnauthorized("未登录")
	}
	if user.Role == enums.RoleBanned {
		return myErrors.NewUnauthorized("账号已被封禁")
	}
	if required == enums.RoleAdmin && user.Role != enums.RoleAdmin {
		return myErrors.NewUnauthorized("需要管理员权限")
	}
	return nil
}

// CanModify 作者本人或管理员可以修改/删除内容
func CanModify(user *entities.User, ownerID uint64) bool {
	if user == nil || user.Role == enums.RoleBanned {
		return false
	}
	return user.ID == ownerID || user.IsAdmin()
}
