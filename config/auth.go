package config

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" json:"-" yaml:"jwt_secret"`
	// TokenTTLHours 令牌有效期（小时），<=0 时取 constant.DefaultTokenTTL
	TokenTTLHours int `mapstructure:"token_ttl_hours" json:"token_ttl_hours" yaml:"token_ttl_hours"`
}
