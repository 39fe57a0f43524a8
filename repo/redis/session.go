package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/constant"
)

// ErrSessionMissing 会话不存在或已过期
var ErrSessionMissing = errors.New("session: not found")

// SessionRepository 保存每个用户当前有效的令牌。
// - 同一用户再次登录会覆盖旧令牌，旧令牌随即失效
// - 退出登录删除键
type SessionRepository interface {
	Save(ctx context.Context, userID uint64, token string, ttl time.Duration) error
	// Get 不存在时返回 ErrSessionMissing
	Get(ctx context.Context, userID uint64) (string, error)
	Delete(ctx context.Context, userID uint64) error
}

type sessionRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

func NewSessionRepository(redisClient *redis.Client, logger *core.ZapLogger) SessionRepository {
	return &sessionRepository{redisClient: redisClient, logger: logger}
}

func sessionKey(userID uint64) string {
	return fmt.Sprintf("%s%d", constant.SessionKeyPrefix, userID)
}

func (r *sessionRepository) Save(ctx context.Context, userID uint64, token string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, sessionKey(userID), token, ttl).Err(); err != nil {
		r.logger.Error("写入登录会话失败", zap.Uint64("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, userID uint64) (string, error) {
	token, err := r.redisClient.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionMissing
		}
		r.logger.Error("读取登录会话失败", zap.Uint64("userID", userID), zap.Error(err))
		return "", err
	}
	return token, nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID uint64) error {
	if err := r.redisClient.Del(ctx, sessionKey(userID)).Err(); err != nil {
		r.logger.Error("删除登录会话失败", zap.Uint64("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
