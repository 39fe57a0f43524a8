package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// CategoryRepository 分类表访问
type CategoryRepository interface {
	GetByID(ctx context.Context, db *gorm.DB, id uint64, preloads ...string) (*entities.Category, error)
	Exists(ctx context.Context, db *gorm.DB, id uint64) (bool, error)
	Create(ctx context.Context, db *gorm.DB, category *entities.Category) error
	Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id uint64) error
	List(ctx context.Context, name string, offset, limit int) ([]entities.Category, int64, error)

	// ChildIDs 直接子分类的 id，不递归
	ChildIDs(ctx context.Context, parentID uint64) ([]uint64, error)

	// ListSchoolTree 某院校考查的顶级分类及其直接子分类。
	// 两层都要求存在 (category_id, school_id) 关联行，没有关联的分类连同其子分类一起排除。
	ListSchoolTree(ctx context.Context, schoolID uint64) ([]entities.Category, error)
}

type categoryRepository struct {
	crudRepository[entities.Category]
}

func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{crudRepository: newCrudRepository[entities.Category](db, logger, "category")}
}

func (r *categoryRepository) List(ctx context.Context, name string, offset, limit int) ([]entities.Category, int64, error) {
	return r.Page(ctx, offset, limit, nil, likeScope("name", name))
}

func (r *categoryRepository) ChildIDs(ctx context.Context, parentID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.conn(ctx, nil).Model(&entities.Category{}).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("查询子分类失败", zap.Uint64("parentID", parentID), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// schoolLinked 半连接：只保留与该院校存在关联的分类
func schoolLinked(schoolID uint64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (SELECT 1 FROM school_categories sc WHERE sc.category_id = categories.id AND sc.school_id = ?)", schoolID)
	}
}

func (r *categoryRepository) ListSchoolTree(ctx context.Context, schoolID uint64) ([]entities.Category, error) {
	var roots []entities.Category
	err := r.conn(ctx, nil).
		Scopes(schoolLinked(schoolID)).
		Where("parent_id IS NULL").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(schoolLinked(schoolID)).Order("id ASC")
		}).
		Order("id ASC").
		Find(&roots).Error
	if err != nil {
		r.logger.Error("查询院校分类树失败", zap.Uint64("schoolID", schoolID), zap.Error(err))
		return nil, err
	}
	return roots, nil
}
