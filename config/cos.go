package config

// COSConfig 腾讯云对象存储配置，用于视频与封面图上传。
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"-" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"-" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 可选，CDN 或自定义域名；为空时使用存储桶默认域名
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	// MaxUploadMB 单个文件上限，<=0 时取 constant.DefaultMaxUploadMB
	MaxUploadMB int64 `mapstructure:"max_upload_mb" json:"max_upload_mb" yaml:"max_upload_mb"`
}

// Complete 报告关键字段是否齐全。
func (c COSConfig) Complete() bool {
	return c.SecretID != "" && c.SecretKey != "" && c.BucketName != "" && c.AppID != "" && c.Region != ""
}
