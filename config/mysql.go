package config

import "time"

// SourceConfig 描述一个数据源（主库或某个从库）。
type SourceConfig struct {
	DSN string `mapstructure:"dsn" json:"-" yaml:"dsn"`
	// 以下为可选覆盖项，nil 表示沿用共享设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" json:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 主库 + 可选从库列表。Read 为空时不启用读写分离。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" json:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" json:"read" yaml:"read"`

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" json:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" json:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒

	// AutoMigrate 为 true 时启动阶段执行表结构迁移
	AutoMigrate bool `mapstructure:"auto_migrate" json:"auto_migrate" yaml:"auto_migrate"`
}

// Pool 主库连接池参数，Write 上的覆盖项优先于共享设置
type Pool struct {
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
}

func (c MySQLConfig) WritePool() Pool {
	pool := Pool{
		MaxIdle:     c.SharedMaxIdleConns,
		MaxOpen:     c.SharedMaxOpenConns,
		MaxLifetime: time.Duration(c.SharedConnMaxLifetime) * time.Second,
	}
	if c.Write.MaxIdleConns != nil {
		pool.MaxIdle = *c.Write.MaxIdleConns
	}
	if c.Write.MaxOpenConns != nil {
		pool.MaxOpen = *c.Write.MaxOpenConns
	}
	if c.Write.ConnMaxLifetime != nil {
		pool.MaxLifetime = time.Duration(*c.Write.ConnMaxLifetime) * time.Second
	}
	return pool
}

// ReplicaDSNs 跳过空 DSN
func (c MySQLConfig) ReplicaDSNs() []string {
	dsns := make([]string, 0, len(c.Read))
	for _, r := range c.Read {
		if r.DSN != "" {
			dsns = append(dsns, r.DSN)
		}
	}
	return dsns
}
