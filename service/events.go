package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/mq/producer"
)

// EventPublisher 内容生命周期事件出口，由 *producer.KafkaProducer 实现。
type EventPublisher interface {
	SendContentCreated(ctx context.Context, event producer.ContentCreatedEvent) error
	SendContentDeleted(ctx context.Context, event producer.ContentDeletedEvent) error
	SendReactionToggled(ctx context.Context, event producer.ReactionToggledEvent) error
}

const eventSendTimeout = 10 * time.Second

// notifier 在事务提交后异步发送事件，失败只记录日志。publisher 为 nil 时什么也不做。
type notifier struct {
	publisher EventPublisher
	logger    *core.ZapLogger
}

func (n notifier) emit(name string, send func(ctx context.Context, p EventPublisher) error) {
	if n.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventSendTimeout)
		defer cancel()
		if err := send(ctx, n.publisher); err != nil {
			n.logger.Error("发送 Kafka 事件失败", zap.String("event", name), zap.Error(err))
		}
	}()
}
