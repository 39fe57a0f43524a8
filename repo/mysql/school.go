package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// SchoolRepository 学校表访问
type SchoolRepository interface {
	GetByID(ctx context.Context, db *gorm.DB, id uint64, preloads ...string) (*entities.School, error)
	Exists(ctx context.Context, db *gorm.DB, id uint64) (bool, error)
	Create(ctx context.Context, db *gorm.DB, school *entities.School) error
	Updates(ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id uint64) error
	List(ctx context.Context, name string, offset, limit int) ([]entities.School, int64, error)
}

type schoolRepository struct {
	crudRepository[entities.School]
}

func NewSchoolRepository(db *gorm.DB, logger *core.ZapLogger) SchoolRepository {
	return &schoolRepository{crudRepository: newCrudRepository[entities.School](db, logger, "school")}
}

func (r *schoolRepository) List(ctx context.Context, name string, offset, limit int) ([]entities.School, int64, error) {
	return r.Page(ctx, offset, limit, nil, likeScope("name", name))
}
