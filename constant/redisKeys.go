package constant

// SessionKeyPrefix 用户当前有效令牌。
// 示例 Key: "forum:session:42"  类型: String  值: 最近一次签发的 JWT
// TTL 与令牌有效期一致，再次登录会覆盖旧值，使旧令牌失效。
const SessionKeyPrefix = "forum:session:"
