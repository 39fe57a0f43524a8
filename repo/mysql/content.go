package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
)

// ContentFilter 标题 / 正文模糊匹配，空字符串表示不过滤
type ContentFilter struct {
	Title   string
	Content string
}

// FeedQuery 首页列表条件，只取已发布内容
type FeedQuery struct {
	RecommendedOnly  bool
	Type             *enums.ContentType
	ClassificationID *uint64
	OrderByLikes     bool // false 时按创建时间倒序
	Limit            int
}

// ContentRepository 帖子与问答共用的数据访问，T 为 entities.Post 或 entities.Question。
type ContentRepository[T any, PT entities.ContentPtr[T]] interface {
	// ListRoots 前台列表：只取根内容，id 倒序，不查询 content 列
	ListRoots(ctx context.Context, filter ContentFilter, offset, limit int) ([]T, int64, error)

	// ListAll 后台列表：包含回复，带作者与分类
	ListAll(ctx context.Context, filter ContentFilter, offset, limit int) ([]T, int64, error)

	// GetTree 详情：两层回复（按 id 升序）+ 作者 + 分类。不存在时返回 commonerrors.ErrRepoNotFound
	GetTree(ctx context.Context, id uint64) (*T, error)

	// LockByID SELECT ... FOR UPDATE，必须在事务内调用
	LockByID(ctx context.Context, tx *gorm.DB, id uint64) (*T, error)

	Exists(ctx context.Context, db *gorm.DB, id uint64) (bool, error)
	GetByID(ctx context.Context, db *gorm.DB, id uint64) (*T, error)
	Create(ctx context.Context, db *gorm.DB, row *T) error
	Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error

	// Delete 物理删除，回复与点赞/收藏行由外键级联删除
	Delete(ctx context.Context, db *gorm.DB, id uint64) error

	// ListByIDs 按 id 批量读取，不含 content 列，用于补齐父内容
	ListByIDs(ctx context.Context, ids []uint64) ([]T, error)

	// ListReactedBy 用户点赞/收藏过的内容，按内容 id 倒序，不含 content 列，带分类
	ListReactedBy(ctx context.Context, reactionTable string, userID uint64, offset, limit int) ([]T, int64, error)

	// ListByClassificationIDs 分类（或院校）集合下的内容，只取 id、title、content、created_at
	ListByClassificationIDs(ctx context.Context, ids []uint64) ([]T, error)

	ListFeed(ctx context.Context, q FeedQuery) ([]T, error)

	// AdjustCounter 计数增减，减到 0 为止
	AdjustCounter(ctx context.Context, db *gorm.DB, id uint64, column string, delta int) error

	// Counter 读取单个计数列
	Counter(ctx context.Context, db *gorm.DB, id uint64, column string) (uint64, error)

	// ReconcileCounter 以关联表行数为准重写计数列，返回被修正的行数
	ReconcileCounter(ctx context.Context, db *gorm.DB, column, reactionTable string) (int64, error)
}

type contentRepository[T any, PT entities.ContentPtr[T]] struct {
	db     *gorm.DB
	logger *core.ZapLogger
	kind   entities.ContentKind
}

// NewContentRepository 构造泛型内容仓库
func NewContentRepository[T any, PT entities.ContentPtr[T]](db *gorm.DB, logger *core.ZapLogger) ContentRepository[T, PT] {
	return &contentRepository[T, PT]{
		db:     db,
		logger: logger,
		kind:   entities.KindOf[T, PT](),
	}
}

func (r *contentRepository[T, PT]) conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if db == nil {
		db = r.db
	}
	return db.WithContext(ctx)
}

func (r *contentRepository[T, PT]) column(name string) string {
	return r.kind.Plural + "." + name
}

func (r *contentRepository[T, PT]) filterScope(filter ContentFilter) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(likeScope(r.column("title"), filter.Title), likeScope(r.column("content"), filter.Content))
	}
}

func (r *contentRepository[T, PT]) page(ctx context.Context, offset, limit int, scopes []Scope, decorate func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := r.conn(ctx, nil).Model(new(T)).Scopes(scopes...).Count(&total).Error; err != nil {
		r.logger.Error("内容分页计数失败", zap.String("kind", r.kind.Name), zap.Error(err))
		return nil, 0, err
	}

	var rows []T
	query := decorate(r.conn(ctx, nil).Model(new(T)).Scopes(scopes...))
	if err := query.Order(r.column("id") + " DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		r.logger.Error("内容分页查询失败", zap.String("kind", r.kind.Name), zap.Error(err))
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *contentRepository[T, PT]) ListRoots(ctx context.Context, filter ContentFilter, offset, limit int) ([]T, int64, error) {
	roots := func(db *gorm.DB) *gorm.DB { return db.Where(r.column("parent_id") + " IS NULL") }
	return r.page(ctx, offset, limit, []Scope{roots, r.filterScope(filter)}, func(db *gorm.DB) *gorm.DB {
		return db.Omit("content")
	})
}

func (r *contentRepository[T, PT]) ListAll(ctx context.Context, filter ContentFilter, offset, limit int) ([]T, int64, error) {
	return r.page(ctx, offset, limit, []Scope{r.filterScope(filter)}, func(db *gorm.DB) *gorm.DB {
		return db.Preload("User").Preload(r.kind.ClassificationAssociation)
	})
}

func (r *contentRepository[T, PT]) GetTree(ctx context.Context, id uint64) (*T, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }
	var row T
	err := r.conn(ctx, nil).
		Preload("User").
		Preload(r.kind.ClassificationAssociation).
		Preload("Children", byID).
		Preload("Children.User").
		Preload("Children.Children", byID).
		Preload("Children.Children.User").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询内容详情失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *contentRepository[T, PT]) LockByID(ctx context.Context, tx *gorm.DB, id uint64) (*T, error) {
	var row T
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Omit("content").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("锁定内容行失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *contentRepository[T, PT]) Exists(ctx context.Context, db *gorm.DB, id uint64) (bool, error) {
	var n int64
	if err := r.conn(ctx, db).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		r.logger.Error("检查内容是否存在失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.Error(err))
		return false, err
	}
	return n > 0, nil
}

func (r *contentRepository[T, PT]) GetByID(ctx context.Context, db *gorm.DB, id uint64) (*T, error) {
	var row T
	if err := r.conn(ctx, db).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按 ID 查询内容失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *contentRepository[T, PT]) Create(ctx context.Context, db *gorm.DB, row *T) error {
	if err := r.conn(ctx, db).Create(row).Error; err != nil {
		r.logger.Error("创建内容失败", zap.String("kind", r.kind.Name), zap.Error(err))
		return err
	}
	return nil
}

func (r *contentRepository[T, PT]) Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.conn(ctx, db).Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
		r.logger.Error("更新内容失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.Any("fields", fields), zap.Error(err))
		return err
	}
	return nil
}

func (r *contentRepository[T, PT]) Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	result := r.conn(ctx, db).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		r.logger.Error("删除内容失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *contentRepository[T, PT]) ListByIDs(ctx context.Context, ids []uint64) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []T
	if err := r.conn(ctx, nil).Omit("content").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		r.logger.Error("批量查询内容失败", zap.String("kind", r.kind.Name), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *contentRepository[T, PT]) ListReactedBy(ctx context.Context, reactionTable string, userID uint64, offset, limit int) ([]T, int64, error) {
	reacted := func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s IN (SELECT rx.%s FROM %s rx WHERE rx.user_id = ?)", r.column("id"), r.kind.ReactionColumn, reactionTable), userID)
	}
	return r.page(ctx, offset, limit, []Scope{reacted}, func(db *gorm.DB) *gorm.DB {
		return db.Omit("content").Preload(r.kind.ClassificationAssociation)
	})
}

func (r *contentRepository[T, PT]) ListByClassificationIDs(ctx context.Context, ids []uint64) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []T
	err := r.conn(ctx, nil).
		Select("id", "title", "content", "created_at").
		Where(r.kind.ClassificationColumn+" IN ?", ids).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("按分类查询内容失败", zap.String("kind", r.kind.Name), zap.Uint64s("ids", ids), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *contentRepository[T, PT]) ListFeed(ctx context.Context, q FeedQuery) ([]T, error) {
	query := r.conn(ctx, nil).Where("status = ?", enums.StatusPublished)
	if q.RecommendedOnly {
		query = query.Where("is_recommended = ?", true)
	}
	if q.Type != nil {
		query = query.Where("type = ?", *q.Type)
	}
	if q.ClassificationID != nil {
		query = query.Where(r.kind.ClassificationColumn+" = ?", *q.ClassificationID)
	}
	if q.OrderByLikes {
		query = query.Order("likes_count DESC").Order("id DESC")
	} else {
		query = query.Order("created_at DESC").Order("id DESC")
	}

	var rows []T
	if err := query.Limit(q.Limit).Find(&rows).Error; err != nil {
		r.logger.Error("查询首页列表失败", zap.String("kind", r.kind.Name), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *contentRepository[T, PT]) AdjustCounter(ctx context.Context, db *gorm.DB, id uint64, column string, delta int) error {
	if delta == 0 {
		return nil
	}
	var expr clause.Expr
	if delta > 0 {
		expr = gorm.Expr(column+" + ?", delta)
	} else {
		// 防止减成负数
		expr = gorm.Expr(fmt.Sprintf("CASE WHEN %s >= ? THEN %s - ? ELSE 0 END", column, column), -delta, -delta)
	}
	err := r.conn(ctx, db).Model(new(T)).Where("id = ?", id).UpdateColumn(column, expr).Error
	if err != nil {
		r.logger.Error("更新计数失败", zap.String("kind", r.kind.Name), zap.Uint64("id", id), zap.String("column", column), zap.Int("delta", delta), zap.Error(err))
	}
	return err
}

func (r *contentRepository[T, PT]) Counter(ctx context.Context, db *gorm.DB, id uint64, column string) (uint64, error) {
	var values []uint64
	if err := r.conn(ctx, db).Model(new(T)).Where("id = ?", id).Pluck(column, &values).Error; err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, commonerrors.ErrRepoNotFound
	}
	return values[0], nil
}

func (r *contentRepository[T, PT]) ReconcileCounter(ctx context.Context, db *gorm.DB, column, reactionTable string) (int64, error) {
	actual := fmt.Sprintf("(SELECT COUNT(*) FROM %s rx WHERE rx.%s = %s)", reactionTable, r.kind.ReactionColumn, r.column("id"))
	result := r.conn(ctx, db).Exec(fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s <> %s",
		r.kind.Plural, column, actual, column, actual))
	if result.Error != nil {
		r.logger.Error("修正计数失败", zap.String("table", r.kind.Plural), zap.String("column", column), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
