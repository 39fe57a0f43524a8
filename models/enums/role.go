package enums

// Role 用户角色，取值与数据库中的整数一一对应。
type Role int

const (
	RoleNormal Role = iota // 0 - 普通用户
	RoleAdmin              // 1 - 管理员
	RoleBanned             // 2 - 封禁用户
)

func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleAdmin:
		return "admin"
	case RoleBanned:
		return "banned"
	default:
		return "unknown"
	}
}

// Valid 报告 r 是否为已定义的角色。
func (r Role) Valid() bool {
	return r >= RoleNormal && r <= RoleBanned
}

// Sex 0 未知, 1 男, 2 女
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)
