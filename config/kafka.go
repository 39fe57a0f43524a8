package config

// KafkaConfig Brokers 为空时服务不创建生产者，事件通知整体关闭。
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	ContentCreated  string `mapstructure:"contentCreated" json:"contentCreated" yaml:"contentCreated"`    // 帖子/问答发布
	ContentDeleted  string `mapstructure:"contentDeleted" json:"contentDeleted" yaml:"contentDeleted"`    // 帖子/问答删除
	ReactionToggled string `mapstructure:"reactionToggled" json:"reactionToggled" yaml:"reactionToggled"` // 点赞/收藏切换
}
