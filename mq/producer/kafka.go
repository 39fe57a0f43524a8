package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/config"
)

// KafkaProducer 内容生命周期事件的生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer Brokers 为空时返回 nil，调用方据此关闭事件通知。
func NewKafkaProducer(cfg config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 序列化为 JSON 写入指定主题，key 用于分区
func (p *KafkaProducer) SendEvent(ctx context.Context, topic, key string, event any) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
		return err
	}
	p.logger.Info("Kafka 消息已发送", zap.String("topic", topic))
	return nil
}

func (p *KafkaProducer) SendContentCreated(ctx context.Context, event ContentCreatedEvent) error {
	stamp(&event.EventID, &event.Timestamp)
	return p.SendEvent(ctx, p.topics.ContentCreated, event.Kind, event)
}

func (p *KafkaProducer) SendContentDeleted(ctx context.Context, event ContentDeletedEvent) error {
	stamp(&event.EventID, &event.Timestamp)
	return p.SendEvent(ctx, p.topics.ContentDeleted, event.Kind, event)
}

func (p *KafkaProducer) SendReactionToggled(ctx context.Context, event ReactionToggledEvent) error {
	stamp(&event.EventID, &event.Timestamp)
	return p.SendEvent(ctx, p.topics.ReactionToggled, event.Reaction, event)
}

// Close 刷出缓冲区中的消息
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

func stamp(id *string, ts *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	if ts.IsZero() {
		*ts = time.Now()
	}
}
