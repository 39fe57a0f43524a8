package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// UserRepository 用户表访问
type UserRepository interface {
	GetByID(ctx context.Context, db *gorm.DB, id uint64, preloads ...string) (*entities.User, error)
	Exists(ctx context.Context, db *gorm.DB, id uint64) (bool, error)
	Create(ctx context.Context, db *gorm.DB, user *entities.User) error
	Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id uint64) error

	// GetByLogin 按邮箱或用户名查找，用于登录
	GetByLogin(ctx context.Context, login string) (*entities.User, error)

	// List 后台分页，username / email 为空时不过滤
	List(ctx context.Context, username, email string, offset, limit int) ([]entities.User, int64, error)

	// TouchLastLogin 只更新 last_login
	TouchLastLogin(ctx context.Context, id uint64, at time.Time) error

	// ReleaseReactions 该用户点过赞/收藏的内容计数各减 1，减到 0 为止。
	// 需在删除用户的同一事务内、删除之前调用，关联行随后由外键级联删除。
	ReleaseReactions(ctx context.Context, db *gorm.DB, id uint64) error
}

type userRepository struct {
	crudRepository[entities.User]
}

func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{crudRepository: newCrudRepository[entities.User](db, logger, "user")}
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*entities.User, error) {
	var user entities.User
	err := r.conn(ctx, nil).
		Where("email = ? OR username = ?", login, login).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按登录名查询用户失败", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, username, email string, offset, limit int) ([]entities.User, int64, error) {
	return r.Page(ctx, offset, limit, nil, likeScope("username", username), likeScope("email", email))
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id uint64, at time.Time) error {
	err := r.conn(ctx, nil).Model(&entities.User{}).Where("id = ?", id).UpdateColumn("last_login", at).Error
	if err != nil {
		r.logger.Warn("更新最后登录时间失败", zap.Uint64("userID", id), zap.Error(err))
	}
	return err
}

func (r *userRepository) ReleaseReactions(ctx context.Context, db *gorm.DB, id uint64) error {
	for _, kind := range entities.ReactionKinds {
		col := kind.CounterColumn
		stmt := fmt.Sprintf(
			"UPDATE %s SET %s = CASE WHEN %s > 0 THEN %s - 1 ELSE 0 END WHERE id IN (SELECT %s FROM %s WHERE user_id = ?)",
			kind.ContentTable, col, col, col, kind.ContentColumn, kind.Table,
		)
		if err := r.conn(ctx, db).Exec(stmt, id).Error; err != nil {
			r.logger.Error("回退用户点赞/收藏计数失败", zap.Uint64("userID", id), zap.String("reaction", kind.Name), zap.Error(err))
			return err
		}
	}
	return nil
}
