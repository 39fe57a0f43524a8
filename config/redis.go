package config

// RedisConfig 仅用于登录会话。Addr 为空时不连接 Redis，令牌只做 JWT 校验。
type RedisConfig struct {
	Addr         string `mapstructure:"addr" json:"addr" yaml:"addr"`
	Password     string `mapstructure:"password" json:"-" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize     int    `mapstructure:"pool_size" json:"pool_size" yaml:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns" json:"min_idle_conns" yaml:"min_idle_conns"`
	DialTimeout  int    `mapstructure:"dial_timeout" json:"dial_timeout" yaml:"dial_timeout"` // 秒
}
