package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// CategoryService 前台分类查询
type CategoryService interface {
	// SchoolTree 当前用户目标院校要考的一级分类及其二级分类，两层都按院校关联过滤
	SchoolTree(ctx context.Context, actor *entities.User) ([]vo.CategoryVO, error)

	// QuestionsUnder 分类本身及其直接子分类下的全部题目，id 倒序
	QuestionsUnder(ctx context.Context, categoryID uint64) ([]vo.CategoryQuestionVO, error)
}

type categoryService struct {
	categoryRepo mysql.CategoryRepository
	userRepo     mysql.UserRepository
	questionRepo mysql.ContentRepository[entities.Question, *entities.Question]
	logger       *core.ZapLogger
}

func NewCategoryService(
	categoryRepo mysql.CategoryRepository,
	userRepo mysql.UserRepository,
	questionRepo mysql.ContentRepository[entities.Question, *entities.Question],
	logger *core.ZapLogger,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (s *categoryService) SchoolTree(ctx context.Context, actor *entities.User) ([]vo.CategoryVO, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, nil, actor.ID)
	if err != nil {
		return nil, notFoundAs(err, "用户不存在。")
	}
	if user.TargetSchoolID == nil {
		return nil, myErrors.NewNotFound("用户未设置目标学校。")
	}

	roots, err := s.categoryRepo.ListSchoolTree(ctx, *user.TargetSchoolID)
	if err != nil {
		return nil, err
	}
	return vo.NewCategoryTree(roots), nil
}

func (s *categoryService) QuestionsUnder(ctx context.Context, categoryID uint64) ([]vo.CategoryQuestionVO, error) {
	ok, err := s.categoryRepo.Exists(ctx, nil, categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, myErrors.NewNotFound("分类未找到")
	}

	childIDs, err := s.categoryRepo.ChildIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByClassificationIDs(ctx, append([]uint64{categoryID}, childIDs...))
	if err != nil {
		return nil, err
	}

	out := make([]vo.CategoryQuestionVO, 0, len(questions))
	for _, q := range questions {
		out = append(out, vo.CategoryQuestionVO{
			ID:        q.ID,
			Title:     q.Title,
			Content:   q.Content,
			CreatedAt: q.CreatedAt,
		})
	}
	return out, nil
}
