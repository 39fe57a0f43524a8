package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scope 附加查询条件，例如按名称模糊匹配
type Scope = func(*gorm.DB) *gorm.DB

// crudRepository 为简单实体（用户、学校、分类、院校分类）提供通用的增删改查。
// - 所有写方法都接受可选的 db，传入事务对象时在事务内执行，传 nil 使用默认连接
// - 未找到统一返回 commonerrors.ErrRepoNotFound
type crudRepository[E any] struct {
	db     *gorm.DB
	logger *core.ZapLogger
	entity string // 日志中的实体名
}

func newCrudRepository[E any](db *gorm.DB, logger *core.ZapLogger, entity string) crudRepository[E] {
	return crudRepository[E]{db: db, logger: logger, entity: entity}
}

// conn 选择执行连接
func (r *crudRepository[E]) conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if db == nil {
		db = r.db
	}
	return db.WithContext(ctx)
}

// GetByID preloads 为需要预加载的关联名
func (r *crudRepository[E]) GetByID(ctx context.Context, db *gorm.DB, id uint64, preloads ...string) (*E, error) {
	query := r.conn(ctx, db)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	var row E
	if err := query.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按 ID 查询失败", zap.String("entity", r.entity), zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

// Exists 只做计数，不取整行
func (r *crudRepository[E]) Exists(ctx context.Context, db *gorm.DB, id uint64) (bool, error) {
	var n int64
	if err := r.conn(ctx, db).Model(new(E)).Where("id = ?", id).Count(&n).Error; err != nil {
		r.logger.Error("检查记录是否存在失败", zap.String("entity", r.entity), zap.Uint64("id", id), zap.Error(err))
		return false, err
	}
	return n > 0, nil
}

// Page id 倒序分页
func (r *crudRepository[E]) Page(ctx context.Context, offset, limit int, preloads []string, scopes ...Scope) ([]E, int64, error) {
	var total int64
	if err := r.conn(ctx, nil).Model(new(E)).Scopes(scopes...).Count(&total).Error; err != nil {
		r.logger.Error("分页计数失败", zap.String("entity", r.entity), zap.Error(err))
		return nil, 0, err
	}

	query := r.conn(ctx, nil).Scopes(scopes...)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	var rows []E
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		r.logger.Error("分页查询失败", zap.String("entity", r.entity), zap.Error(err))
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *crudRepository[E]) Create(ctx context.Context, db *gorm.DB, row *E) error {
	if err := r.conn(ctx, db).Create(row).Error; err != nil {
		r.logger.Warn("创建记录失败", zap.String("entity", r.entity), zap.Error(err))
		return err
	}
	return nil
}

// Updates 按列名更新，fields 为空时不做任何事
func (r *crudRepository[E]) Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.conn(ctx, db).Model(new(E)).Where("id = ?", id).Updates(fields).Error; err != nil {
		r.logger.Warn("更新记录失败", zap.String("entity", r.entity), zap.Uint64("id", id), zap.Any("fields", fields), zap.Error(err))
		return err
	}
	return nil
}

// Delete 物理删除，依赖外键规则级联
func (r *crudRepository[E]) Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	result := r.conn(ctx, db).Where("id = ?", id).Delete(new(E))
	if result.Error != nil {
		r.logger.Error("删除记录失败", zap.String("entity", r.entity), zap.Uint64("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// likeScope 非空时追加 column LIKE %value%
func likeScope(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" LIKE ?", "%"+value+"%")
	}
}
