package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// SchoolAdminService 后台学校管理
type SchoolAdminService interface {
	List(ctx context.Context, q dto.NameListQuery) (*vo.ListPage[*vo.SchoolVO], error)
	Get(ctx context.Context, id uint64) (*vo.SchoolVO, error)
	Create(ctx context.Context, req *dto.SchoolWriteRequest) (*vo.SchoolVO, error)
	Update(ctx context.Context, id uint64, req *dto.SchoolWriteRequest) (*vo.SchoolVO, error)
	// Delete 关联用户的 target_school_id 与帖子的 school_id 被置空
	Delete(ctx context.Context, id uint64) error
}

type schoolAdminService struct {
	schoolRepo mysql.SchoolRepository
	logger     *core.ZapLogger
}

func NewSchoolAdminService(schoolRepo mysql.SchoolRepository, logger *core.ZapLogger) SchoolAdminService {
	return &schoolAdminService{schoolRepo: schoolRepo, logger: logger}
}

func schoolNotFound(id uint64) string { return fmt.Sprintf("ID: %d的学校未找到。", id) }

func (s *schoolAdminService) List(ctx context.Context, q dto.NameListQuery) (*vo.ListPage[*vo.SchoolVO], error) {
	page := q.Resolve()
	rows, total, err := s.schoolRepo.List(ctx, strings.TrimSpace(q.Name), page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	items := make([]*vo.SchoolVO, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewSchoolVO(&rows[i]))
	}
	return &vo.ListPage[*vo.SchoolVO]{
		Key:        "schools",
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}

func (s *schoolAdminService) Get(ctx context.Context, id uint64) (*vo.SchoolVO, error) {
	school, err := s.schoolRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundAs(err, schoolNotFound(id))
	}
	return vo.NewSchoolVO(school), nil
}

func (s *schoolAdminService) Create(ctx context.Context, req *dto.SchoolWriteRequest) (*vo.SchoolVO, error) {
	checks := &fieldChecks{}
	name := trimmed(req.Name)
	if name == "" {
		checks.fail("name", "必须填写")
	}
	if req.Number == nil || *req.Number == 0 {
		checks.fail("number", "必须是正整数")
	}
	if err := checks.err(); err != nil {
		return nil, err
	}

	school := &entities.School{Name: name, Number: *req.Number, Introduce: req.Introduce}
	if err := s.schoolRepo.Create(ctx, nil, school); err != nil {
		return nil, err
	}
	return vo.NewSchoolVO(school), nil
}

func (s *schoolAdminService) Update(ctx context.Context, id uint64, req *dto.SchoolWriteRequest) (*vo.SchoolVO, error) {
	checks := &fieldChecks{}
	fields := map[string]any{}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name == "" {
			checks.fail("name", "不能为空")
		} else {
			fields["name"] = name
		}
	}
	if req.Number != nil {
		if *req.Number == 0 {
			checks.fail("number", "必须是正整数")
		}
		fields["number"] = *req.Number
	}
	if req.Introduce != nil {
		fields["introduce"] = *req.Introduce
	}

	ok, err := s.schoolRepo.Exists(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, myErrors.NewNotFound(schoolNotFound(id))
	}
	if err := checks.err(); err != nil {
		return nil, err
	}
	if err := s.schoolRepo.Updates(ctx, nil, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *schoolAdminService) Delete(ctx context.Context, id uint64) error {
	if err := s.schoolRepo.Delete(ctx, nil, id); err != nil {
		return notFoundAs(err, schoolNotFound(id))
	}
	s.logger.Info("后台删除学校", zap.Uint64("schoolID", id))
	return nil
}

// CategoryAdminService 后台分类管理
type CategoryAdminService interface {
	List(ctx context.Context, q dto.NameListQuery) (*vo.ListPage[*vo.CategoryVO], error)
	// Get 带直接子分类
	Get(ctx context.Context, id uint64) (*vo.CategoryVO, error)
	Create(ctx context.Context, req *dto.CategoryWriteRequest) (*vo.CategoryVO, error)
	Update(ctx context.Context, id uint64, req *dto.CategoryWriteRequest) (*vo.CategoryVO, error)
	// Delete 子分类级联删除，问答的 category_id 置空
	Delete(ctx context.Context, id uint64) error
}

type categoryAdminService struct {
	db           *gorm.DB
	categoryRepo mysql.CategoryRepository
	logger       *core.ZapLogger
}

func NewCategoryAdminService(db *gorm.DB, categoryRepo mysql.CategoryRepository, logger *core.ZapLogger) CategoryAdminService {
	return &categoryAdminService{db: db, categoryRepo: categoryRepo, logger: logger}
}

func categoryNotFound(id uint64) string { return fmt.Sprintf("ID: %d的分类未找到。", id) }

func (s *categoryAdminService) List(ctx context.Context, q dto.NameListQuery) (*vo.ListPage[*vo.CategoryVO], error) {
	page := q.Resolve()
	rows, total, err := s.categoryRepo.List(ctx, strings.TrimSpace(q.Name), page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	items := make([]*vo.CategoryVO, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewCategoryVO(&rows[i]))
	}
	return &vo.ListPage[*vo.CategoryVO]{
		Key:        "categories",
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}

func (s *categoryAdminService) Get(ctx context.Context, id uint64) (*vo.CategoryVO, error) {
	category, err := s.categoryRepo.GetByID(ctx, nil, id, "Children")
	if err != nil {
		return nil, notFoundAs(err, categoryNotFound(id))
	}
	return vo.NewCategoryVO(category), nil
}

func (s *categoryAdminService) Create(ctx context.Context, req *dto.CategoryWriteRequest) (*vo.CategoryVO, error) {
	checks := &fieldChecks{}
	name := trimmed(req.Name)
	if name == "" {
		checks.fail("name", "必须填写")
	}
	category := &entities.Category{Name: name, ParentID: req.ParentID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checks.reference(ctx, tx, "parent_id", "分类", req.ParentID, s.categoryRepo.Exists); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.categoryRepo.Create(ctx, tx, category)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, category.ID)
}

func (s *categoryAdminService) Update(ctx context.Context, id uint64, req *dto.CategoryWriteRequest) (*vo.CategoryVO, error) {
	checks := &fieldChecks{}
	fields := map[string]any{}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name == "" {
			checks.fail("name", "不能为空")
		} else {
			fields["name"] = name
		}
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			checks.fail("parent_id", "不能把自身设为父级")
		}
		fields["parent_id"] = *req.ParentID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.categoryRepo.Exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return myErrors.NewNotFound(categoryNotFound(id))
		}
		if err := checks.reference(ctx, tx, "parent_id", "分类", req.ParentID, s.categoryRepo.Exists); err != nil {
			return err
		}
		if err := checks.acyclic(ctx, tx, "parent_id", id, req.ParentID, s.parentOf); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.categoryRepo.Updates(ctx, tx, id, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *categoryAdminService) parentOf(ctx context.Context, db *gorm.DB, id uint64) (*uint64, error) {
	category, err := s.categoryRepo.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return category.ParentID, nil
}

func (s *categoryAdminService) Delete(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.Delete(ctx, nil, id); err != nil {
		return notFoundAs(err, categoryNotFound(id))
	}
	s.logger.Info("后台删除分类", zap.Uint64("categoryID", id))
	return nil
}

// SchoolCategoryAdminService 后台维护院校与分类的考查关系
type SchoolCategoryAdminService interface {
	List(ctx context.Context, q dto.SchoolCategoryListQuery) (*vo.ListPage[*vo.SchoolCategoryVO], error)
	Get(ctx context.Context, id uint64) (*vo.SchoolCategoryVO, error)
	// Upsert 按 (category_id, school_id) 查找，存在则更新考查频率，否则创建
	Upsert(ctx context.Context, req *dto.SchoolCategoryWriteRequest) (row *vo.SchoolCategoryVO, created bool, err error)
	Update(ctx context.Context, id uint64, req *dto.SchoolCategoryWriteRequest) (*vo.SchoolCategoryVO, error)
	Delete(ctx context.Context, id uint64) error
}

type schoolCategoryAdminService struct {
	db           *gorm.DB
	linkRepo     mysql.SchoolCategoryRepository
	schoolRepo   mysql.SchoolRepository
	categoryRepo mysql.CategoryRepository
	logger       *core.ZapLogger
}

func NewSchoolCategoryAdminService(
	db *gorm.DB,
	linkRepo mysql.SchoolCategoryRepository,
	schoolRepo mysql.SchoolRepository,
	categoryRepo mysql.CategoryRepository,
	logger *core.ZapLogger,
) SchoolCategoryAdminService {
	return &schoolCategoryAdminService{
		db:           db,
		linkRepo:     linkRepo,
		schoolRepo:   schoolRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

const defaultExamFrequency = 3

func schoolCategoryNotFound(id uint64) string {
	return fmt.Sprintf("ID: %d的 SchoolCategory 未找到。", id)
}

func (s *schoolCategoryAdminService) List(ctx context.Context, q dto.SchoolCategoryListQuery) (*vo.ListPage[*vo.SchoolCategoryVO], error) {
	page := q.Resolve()
	rows, total, err := s.linkRepo.List(ctx, q.SchoolID, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	items := make([]*vo.SchoolCategoryVO, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewSchoolCategoryVO(&rows[i]))
	}
	return &vo.ListPage[*vo.SchoolCategoryVO]{
		Key:        "schoolCategories",
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}

func (s *schoolCategoryAdminService) Get(ctx context.Context, id uint64) (*vo.SchoolCategoryVO, error) {
	row, err := s.linkRepo.GetByID(ctx, nil, id, "Category", "School")
	if err != nil {
		return nil, notFoundAs(err, schoolCategoryNotFound(id))
	}
	return vo.NewSchoolCategoryVO(row), nil
}

func (s *schoolCategoryAdminService) checkPair(ctx context.Context, tx *gorm.DB, req *dto.SchoolCategoryWriteRequest) error {
	checks := &fieldChecks{}
	if err := checks.reference(ctx, tx, "category_id", "分类", &req.CategoryID, s.categoryRepo.Exists); err != nil {
		return err
	}
	if err := checks.reference(ctx, tx, "school_id", "学校", &req.SchoolID, s.schoolRepo.Exists); err != nil {
		return err
	}
	return checks.err()
}

func (s *schoolCategoryAdminService) Upsert(ctx context.Context, req *dto.SchoolCategoryWriteRequest) (*vo.SchoolCategoryVO, bool, error) {
	var (
		id      uint64
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkPair(ctx, tx, req); err != nil {
			return err
		}
		existing, err := s.linkRepo.FindPair(ctx, tx, req.CategoryID, req.SchoolID)
		switch {
		case err == nil:
			id = existing.ID
			if req.ExamFrequency == nil {
				return nil
			}
			return s.linkRepo.Updates(ctx, tx, id, map[string]any{"exam_frequency": *req.ExamFrequency})
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			row := &entities.SchoolCategory{CategoryID: req.CategoryID, SchoolID: req.SchoolID, ExamFrequency: defaultExamFrequency}
			if req.ExamFrequency != nil {
				row.ExamFrequency = *req.ExamFrequency
			}
			if err := s.linkRepo.Create(ctx, tx, row); err != nil {
				return err
			}
			id, created = row.ID, true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, err
	}
	out, err := s.Get(ctx, id)
	return out, created, err
}

func (s *schoolCategoryAdminService) Update(ctx context.Context, id uint64, req *dto.SchoolCategoryWriteRequest) (*vo.SchoolCategoryVO, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.linkRepo.GetByID(ctx, tx, id); err != nil {
			return notFoundAs(err, schoolCategoryNotFound(id))
		}
		if err := s.checkPair(ctx, tx, req); err != nil {
			return err
		}
		fields := map[string]any{"category_id": req.CategoryID, "school_id": req.SchoolID}
		if req.ExamFrequency != nil {
			fields["exam_frequency"] = *req.ExamFrequency
		}
		return s.linkRepo.Updates(ctx, tx, id, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *schoolCategoryAdminService) Delete(ctx context.Context, id uint64) error {
	if err := s.linkRepo.Delete(ctx, nil, id); err != nil {
		return notFoundAs(err, schoolCategoryNotFound(id))
	}
	return nil
}
