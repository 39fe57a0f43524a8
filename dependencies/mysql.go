// dependencies/mysql.go
package dependencies

import (
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/models/entities"
)

const (
	connectRetries       = 5
	connectRetryInterval = 2 * time.Second
)

// InitMySQL 初始化 MySQL 连接，并配置读写分离 (如果配置了从库)
func InitMySQL(cfg *appConfig.ForumConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, errors.New("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}

	// TranslateError: 唯一键冲突翻译为 gorm.ErrDuplicatedKey，外键失败翻译为 gorm.ErrForeignKeyViolated
	db, err := openWithRetry(mysqlCfg.Write.DSN, &gorm.Config{
		Logger:         core.NewGormLogger(logger, cfg.GormLogConfig),
		TranslateError: true,
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := useReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}
	if err := configurePool(db, mysqlCfg.WritePool(), logger); err != nil {
		return nil, err
	}

	if mysqlCfg.AutoMigrate {
		if err := AutoMigrate(db, logger); err != nil {
			return nil, err
		}
	} else {
		logger.Info("未开启自动迁移，跳过表结构同步")
	}

	logger.Info("成功初始化 MySQL 连接")
	return db, nil
}

// openWithRetry 容器编排下数据库可能晚于服务就绪
func openWithRetry(dsn string, gormConfig *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectRetries; attempt++ {
		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err == nil {
			if err = ping(db); err == nil {
				logger.Info("成功连接到主数据库", zap.Int("attempt", attempt))
				return db, nil
			}
		}
		lastErr = err
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", attempt), zap.Int("maxRetries", connectRetries), zap.Error(err))
		if attempt < connectRetries {
			time.Sleep(connectRetryInterval)
		}
	}
	logger.Error("无法连接到主数据库", zap.Error(lastErr))
	return nil, fmt.Errorf("无法连接到主数据库: %w", lastErr)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// useReplicas 事务内的 SELECT ... FOR UPDATE 始终走主库，dbresolver 对事务连接不做切换
func useReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	dsns := mysqlCfg.ReplicaDSNs()
	if len(dsns) == 0 {
		logger.Info("未配置有效的从数据库，不启用读写分离")
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(dsns))
	for _, dsn := range dsns {
		replicas = append(replicas, mysql.Open(dsn))
	}
	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("成功配置 GORM 读写分离插件", zap.Int("replicas", len(replicas)))
	return nil
}

func configurePool(db *gorm.DB, pool appConfig.Pool, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("无法获取数据库对象以配置连接池", zap.Error(err))
		return fmt.Errorf("无法获取数据库对象: %w", err)
	}
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetConnMaxLifetime(pool.MaxLifetime)

	logger.Info("配置数据库连接池",
		zap.Int("maxIdle", pool.MaxIdle),
		zap.Int("maxOpen", pool.MaxOpen),
		zap.Duration("maxLifetime", pool.MaxLifetime),
	)
	if err := sqlDB.Ping(); err != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(err))
		return fmt.Errorf("配置连接池后 Ping 失败: %w", err)
	}
	return nil
}

// AutoMigrate 按依赖顺序迁移全部实体，外键与级联规则来自实体上的 constraint 标签。
func AutoMigrate(db *gorm.DB, logger *core.ZapLogger) error {
	logger.Info("开始执行数据库自动迁移...")
	if err := db.AutoMigrate(entities.All()...); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("数据库自动迁移完成")
	return nil
}
