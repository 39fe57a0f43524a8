package constant

import "time"

const (
	ServiceName    = "forum-service"
	ServiceVersion = "1.0.0"
)

const (
	DefaultTokenTTL    = 30 * 24 * time.Hour
	DefaultMaxUploadMB = 200

	// BcryptCost 密码哈希强度
	BcryptCost = 10

	// HomeListLimit 首页每个列表的条数
	HomeListLimit = 5

	// DefaultCurrentPage / DefaultPageSize 分页缺省值
	DefaultCurrentPage = 1
	DefaultPageSize    = 10
	// MaxPageValue currentPage 与 pageSize 的上限，超出按上限处理
	MaxPageValue = 1_000_000
)

// COS 对象键前缀，完整格式: forum/media/<purpose>/<yyyymmdd>/<userID>_<uuid><ext>
const COSObjectKeyPrefixMedia = "forum/media/"

// ContextUserKey gin.Context 中保存当前用户实体的键
const ContextUserKey = "currentUser"
