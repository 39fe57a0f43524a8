package entities

import "time"

// Model 所有论坛实体共用的主键与时间戳。
// - 不带 DeletedAt：论坛数据使用物理删除，依靠外键 ON DELETE 规则级联或置空。
type Model struct {
	ID        uint64 `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
