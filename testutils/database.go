// Package testutils 为各层测试提供内存数据库、日志与数据夹具。
package testutils

import (
	"fmt"
	"testing"

	"github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/dependencies"
)

// NewLogger 只输出 error 级别，避免测试输出被业务日志淹没
func NewLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(config.ZapConfig{Level: "error", Encoding: "console"})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}

// SetupTestDB 创建独立的内存 SQLite 库并迁移全部表。
// - 打开外键约束，级联删除与置空与 MySQL 行为一致
// - 单连接：事务闭包内必须使用 tx，不能再用外层 db
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger := NewLogger(t)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         core.NewGormLogger(logger, config.GormLogConfig{Level: "silent", IgnoreRecordNotFoundError: true}),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dependencies.AutoMigrate(db, logger); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
