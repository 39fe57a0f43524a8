package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// ReactionRepository 四张点赞/收藏关联表共用的数据访问，R 为关联行类型。
type ReactionRepository[R any, PR entities.ReactionPtr[R]] interface {
	// FindPair 按 (content_id, user_id) 查找，不存在时返回 commonerrors.ErrRepoNotFound
	FindPair(ctx context.Context, db *gorm.DB, contentID, userID uint64) (*R, error)

	// GetByID 带内容与用户
	GetByID(ctx context.Context, db *gorm.DB, id uint64) (*R, error)

	// Create 唯一约束冲突时返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, db *gorm.DB, row *R) error

	// MovePair 修改关联行指向的内容与用户
	MovePair(ctx context.Context, db *gorm.DB, id, contentID, userID uint64) error

	Delete(ctx context.Context, db *gorm.DB, id uint64) error

	// List 后台分页，带内容与用户
	List(ctx context.Context, offset, limit int) ([]R, int64, error)

	// CountByContent 某内容的关联行数
	CountByContent(ctx context.Context, db *gorm.DB, contentID uint64) (int64, error)
}

type reactionRepository[R any, PR entities.ReactionPtr[R]] struct {
	db     *gorm.DB
	logger *core.ZapLogger
	kind   entities.ReactionKind
}

func NewReactionRepository[R any, PR entities.ReactionPtr[R]](db *gorm.DB, logger *core.ZapLogger) ReactionRepository[R, PR] {
	return &reactionRepository[R, PR]{
		db:     db,
		logger: logger,
		kind:   entities.ReactionKindOf[R, PR](),
	}
}

func (r *reactionRepository[R, PR]) conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if db == nil {
		db = r.db
	}
	return db.WithContext(ctx)
}

func (r *reactionRepository[R, PR]) FindPair(ctx context.Context, db *gorm.DB, contentID, userID uint64) (*R, error) {
	var row R
	err := r.conn(ctx, db).
		Where(r.kind.ContentColumn+" = ? AND user_id = ?", contentID, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询关联行失败", zap.String("table", r.kind.Table), zap.Uint64("contentID", contentID), zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *reactionRepository[R, PR]) GetByID(ctx context.Context, db *gorm.DB, id uint64) (*R, error) {
	var row R
	err := r.conn(ctx, db).
		Preload(r.kind.ContentAssociation).
		Preload("User").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按 ID 查询关联行失败", zap.String("table", r.kind.Table), zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *reactionRepository[R, PR]) Create(ctx context.Context, db *gorm.DB, row *R) error {
	if err := r.conn(ctx, db).Create(row).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Error("创建关联行失败", zap.String("table", r.kind.Table), zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *reactionRepository[R, PR]) MovePair(ctx context.Context, db *gorm.DB, id, contentID, userID uint64) error {
	err := r.conn(ctx, db).Model(new(R)).Where("id = ?", id).Updates(map[string]any{
		r.kind.ContentColumn: contentID,
		"user_id":            userID,
	}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		r.logger.Error("更新关联行失败", zap.String("table", r.kind.Table), zap.Uint64("id", id), zap.Error(err))
	}
	return err
}

func (r *reactionRepository[R, PR]) Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	result := r.conn(ctx, db).Where("id = ?", id).Delete(new(R))
	if result.Error != nil {
		r.logger.Error("删除关联行失败", zap.String("table", r.kind.Table), zap.Uint64("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *reactionRepository[R, PR]) List(ctx context.Context, offset, limit int) ([]R, int64, error) {
	var total int64
	if err := r.conn(ctx, nil).Model(new(R)).Count(&total).Error; err != nil {
		r.logger.Error("关联行计数失败", zap.String("table", r.kind.Table), zap.Error(err))
		return nil, 0, err
	}
	var rows []R
	err := r.conn(ctx, nil).
		Preload(r.kind.ContentAssociation).
		Preload("User").
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("关联行分页查询失败", zap.String("table", r.kind.Table), zap.Error(err))
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *reactionRepository[R, PR]) CountByContent(ctx context.Context, db *gorm.DB, contentID uint64) (int64, error) {
	var n int64
	err := r.conn(ctx, db).Model(new(R)).Where(r.kind.ContentColumn+" = ?", contentID).Count(&n).Error
	return n, err
}
