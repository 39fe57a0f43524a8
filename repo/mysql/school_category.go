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

// SchoolCategoryRepository 院校-分类关联表访问
type SchoolCategoryRepository interface {
	GetByID(ctx context.Context, db *gorm.DB, id uint64, preloads ...string) (*entities.SchoolCategory, error)
	Create(ctx context.Context, db *gorm.DB, row *entities.SchoolCategory) error
	Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id uint64) error

	// FindPair 按 (category_id, school_id) 查找
	FindPair(ctx context.Context, db *gorm.DB, categoryID, schoolID uint64) (*entities.SchoolCategory, error)
	// List schoolID 为 0 时不过滤，结果带分类与学校
	List(ctx context.Context, schoolID uint64, offset, limit int) ([]entities.SchoolCategory, int64, error)
}

type schoolCategoryRepository struct {
	crudRepository[entities.SchoolCategory]
}

func NewSchoolCategoryRepository(db *gorm.DB, logger *core.ZapLogger) SchoolCategoryRepository {
	return &schoolCategoryRepository{crudRepository: newCrudRepository[entities.SchoolCategory](db, logger, "school_category")}
}

func (r *schoolCategoryRepository) FindPair(ctx context.Context, db *gorm.DB, categoryID, schoolID uint64) (*entities.SchoolCategory, error) {
	var row entities.SchoolCategory
	err := r.conn(ctx, db).
		Where("category_id = ? AND school_id = ?", categoryID, schoolID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按分类与学校查询关联失败", zap.Uint64("categoryID", categoryID), zap.Uint64("schoolID", schoolID), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *schoolCategoryRepository) List(ctx context.Context, schoolID uint64, offset, limit int) ([]entities.SchoolCategory, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if schoolID == 0 {
			return db
		}
		return db.Where("school_id = ?", schoolID)
	}
	return r.Page(ctx, offset, limit, []string{"Category", "School"}, scope)
}
