package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/service"
)

// Counts 各类测试数据的数量
type Counts struct {
	Schools    int
	Categories int
	Users      int
	Posts      int
	Questions  int
	Reactions  int
}

// Seeder 所有写入都走服务层，校验与计数维护和线上一致
type Seeder struct {
	Auth           service.AuthService
	Schools        service.SchoolAdminService
	Categories     service.CategoryAdminService
	SchoolCategory service.SchoolCategoryAdminService
	Posts          service.ContentService
	Questions      service.ContentService
	Reactions      []service.ReactionService
	UserRepo       mysql.UserRepository
	Logger         *core.ZapLogger
}

type seeded struct {
	schoolIDs   []uint64
	leafIDs     []uint64
	users       []*entities.User
	postIDs     []uint64
	questionIDs []uint64
}

// Seed 按依赖顺序填充：学校 -> 分类 -> 考查关联 -> 用户 -> 帖子/问答 -> 点赞收藏
func (s *Seeder) Seed(ctx context.Context, n Counts) error {
	s.Logger.Info("开始填充测试数据 (通过服务层)...",
		zap.Int("schools", n.Schools), zap.Int("users", n.Users),
		zap.Int("posts", n.Posts), zap.Int("questions", n.Questions))

	var data seeded
	steps := []struct {
		name string
		run  func(context.Context, Counts, *seeded) error
	}{
		{"学校", s.seedSchools},
		{"分类", s.seedCategories},
		{"院校分类关联", s.seedLinks},
		{"用户", s.seedUsers},
		{"帖子与问答", s.seedContent},
		{"点赞收藏", s.seedReactions},
	}
	for _, step := range steps {
		if err := step.run(ctx, n, &data); err != nil {
			return fmt.Errorf("填充%s失败: %w", step.name, err)
		}
		s.Logger.Info("填充完成", zap.String("step", step.name))
	}
	return nil
}

func (s *Seeder) seedSchools(ctx context.Context, n Counts, data *seeded) error {
	for i := 0; i < n.Schools; i++ {
		name := fmt.Sprintf("%s大学 %d", gofakeit.City(), i+1)
		number := uint(10000 + i + 1)
		intro := gofakeit.Paragraph(1, 3, 15, " ")
		school, err := s.Schools.Create(ctx, &dto.SchoolWriteRequest{Name: &name, Number: &number, Introduce: &intro})
		if err != nil {
			return err
		}
		data.schoolIDs = append(data.schoolIDs, school.ID)
	}
	return nil
}

// seedCategories 每个一级章节下挂 2~4 个二级章节
func (s *Seeder) seedCategories(ctx context.Context, n Counts, data *seeded) error {
	for i := 0; i < n.Categories; i++ {
		name := fmt.Sprintf("第%d章 %s", i+1, gofakeit.BuzzWord())
		top, err := s.Categories.Create(ctx, &dto.CategoryWriteRequest{Name: &name})
		if err != nil {
			return err
		}
		for j := 0; j < gofakeit.Number(2, 4); j++ {
			childName := fmt.Sprintf("%d.%d %s", i+1, j+1, gofakeit.HipsterWord())
			parentID := top.ID
			child, err := s.Categories.Create(ctx, &dto.CategoryWriteRequest{Name: &childName, ParentID: &parentID})
			if err != nil {
				return err
			}
			data.leafIDs = append(data.leafIDs, child.ID)
		}
	}
	return nil
}

// seedLinks 每所学校随机考查一半的二级章节
func (s *Seeder) seedLinks(ctx context.Context, _ Counts, data *seeded) error {
	for _, schoolID := range data.schoolIDs {
		for _, categoryID := range data.leafIDs {
			if !gofakeit.Bool() {
				continue
			}
			freq := gofakeit.Number(1, 5)
			if _, _, err := s.SchoolCategory.Upsert(ctx, &dto.SchoolCategoryWriteRequest{
				CategoryID:    categoryID,
				SchoolID:      schoolID,
				ExamFrequency: &freq,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, n Counts, data *seeded) error {
	for i := 0; i < n.Users; i++ {
		req := &dto.SignUpRequest{
			Email:    fmt.Sprintf("%d_%s", i+1, gofakeit.Email()),
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i+1),
			Password: gofakeit.Password(true, true, true, false, false, 12),
			Nickname: gofakeit.FirstName(),
			Sex:      enums.Sex(gofakeit.Number(0, 2)),
		}
		if len(data.schoolIDs) > 0 {
			target := data.schoolIDs[gofakeit.Number(0, len(data.schoolIDs)-1)]
			req.TargetSchoolID = &target
		}
		created, err := s.Auth.SignUp(ctx, req)
		if err != nil {
			return err
		}
		user, err := s.UserRepo.GetByID(ctx, nil, created.ID)
		if err != nil {
			return err
		}
		data.users = append(data.users, user)
	}
	return nil
}

// seedContent 根内容并发创建，约三分之一再各带一条回复
func (s *Seeder) seedContent(ctx context.Context, n Counts, data *seeded) error {
	if len(data.users) == 0 {
		return nil
	}
	var err error
	data.postIDs, err = s.createMany(ctx, s.Posts, n.Posts, data, func(req *dto.ContentWriteRequest) {
		if len(data.schoolIDs) > 0 {
			schoolID := data.schoolIDs[gofakeit.Number(0, len(data.schoolIDs)-1)]
			req.SchoolID = &schoolID
		}
		contentType := enums.ContentType(gofakeit.Number(1, 4))
		req.Type = &contentType
	})
	if err != nil {
		return err
	}
	data.questionIDs, err = s.createMany(ctx, s.Questions, n.Questions, data, func(req *dto.ContentWriteRequest) {
		if len(data.leafIDs) > 0 {
			categoryID := data.leafIDs[gofakeit.Number(0, len(data.leafIDs)-1)]
			req.CategoryID = &categoryID
		}
		difficulty := gofakeit.Number(1, 5)
		req.Difficulty = &difficulty
	})
	if err != nil {
		return err
	}

	for _, target := range []struct {
		svc service.ContentService
		ids []uint64
	}{{s.Posts, data.postIDs}, {s.Questions, data.questionIDs}} {
		for _, parentID := range target.ids {
			if gofakeit.Number(0, 2) != 0 {
				continue
			}
			title := "回复：" + gofakeit.Sentence(4)
			body := gofakeit.Paragraph(1, 2, 12, " ")
			parent := parentID
			if _, err := target.svc.Create(ctx, s.randomUser(data), &dto.ContentWriteRequest{Title: &title, Content: &body, ParentID: &parent}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createMany(ctx context.Context, svc service.ContentService, count int, data *seeded, fill func(*dto.ContentWriteRequest)) ([]uint64, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ids      []uint64
		firstErr error
	)
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < count; i++ {
		// gofakeit 的全局随机源不保证并发安全，请求体在主协程里生成
		title := gofakeit.Sentence(gofakeit.Number(5, 15))
		body := gofakeit.Paragraph(3, 5, 20, "\n\n")
		req := &dto.ContentWriteRequest{Title: &title, Content: &body}
		fill(req)
		actor := s.randomUser(data)

		wg.Add(1)
		semaphore <- struct{}{}
		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			detail, err := svc.Create(ctx, actor, req)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.Logger.Error(fmt.Sprintf("创建%s %d/%d 失败", svc.Kind().Label, itemIndex+1, count),
					zap.Error(err), zap.String("title", title))
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			ids = append(ids, detail.ID)
		}(i)
	}
	wg.Wait()
	return ids, firstErr
}

// seedReactions 随机用户对随机内容切换点赞/收藏，重复命中即取消
func (s *Seeder) seedReactions(ctx context.Context, n Counts, data *seeded) error {
	if len(data.users) == 0 {
		return nil
	}
	for _, reactions := range s.Reactions {
		ids := data.postIDs
		if reactions.ContentKind().Name == entities.QuestionKind.Name {
			ids = data.questionIDs
		}
		if len(ids) == 0 {
			continue
		}
		for i := 0; i < n.Reactions; i++ {
			contentID := ids[gofakeit.Number(0, len(ids)-1)]
			if _, err := reactions.Toggle(ctx, s.randomUser(data), contentID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) randomUser(data *seeded) *entities.User {
	return data.users[gofakeit.Number(0, len(data.users)-1)]
}
