package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// HomeService 首页四个列表，各自独立查询，互不去重
type HomeService interface {
	Home(ctx context.Context, actor *entities.User) (*vo.HomeVO, error)
}

type homeService struct {
	postRepo mysql.ContentRepository[entities.Post, *entities.Post]
	userRepo mysql.UserRepository
	logger   *core.ZapLogger
}

func NewHomeService(postRepo mysql.ContentRepository[entities.Post, *entities.Post], userRepo mysql.UserRepository, logger *core.ZapLogger) HomeService {
	return &homeService{postRepo: postRepo, userRepo: userRepo, logger: logger}
}

func (s *homeService) Home(ctx context.Context, actor *entities.User) (*vo.HomeVO, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, nil, actor.ID)
	if err != nil {
		return nil, notFoundAs(err, "用户不存在。")
	}

	experience, analysis := enums.TypeExperience, enums.TypeSchoolAnalysis
	out := &vo.HomeVO{SchoolRelatedPosts: []vo.ContentItem{}}
	if out.RecommendedPosts, err = s.feed(ctx, mysql.FeedQuery{RecommendedOnly: true, OrderByLikes: true}); err != nil {
		return nil, err
	}
	if out.ExperiencePosts, err = s.feed(ctx, mysql.FeedQuery{Type: &experience}); err != nil {
		return nil, err
	}
	if out.AnalysisPosts, err = s.feed(ctx, mysql.FeedQuery{Type: &analysis}); err != nil {
		return nil, err
	}
	// 未设置目标院校时该列表为空
	if user.TargetSchoolID != nil {
		if out.SchoolRelatedPosts, err = s.feed(ctx, mysql.FeedQuery{ClassificationID: user.TargetSchoolID}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *homeService) feed(ctx context.Context, q mysql.FeedQuery) ([]vo.ContentItem, error) {
	q.Limit = constant.HomeListLimit
	rows, err := s.postRepo.ListFeed(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]vo.ContentItem, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewContentItem(&rows[i], true))
	}
	return items, nil
}
