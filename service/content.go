package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// Audience 区分前台与后台，两者的列表口径和提示文案不同。
type Audience int

const (
	AudienceFront Audience = iota
	AudienceAdmin
)

// ContentService 帖子与问答的业务接口，两种内容共用同一套实现。
type ContentService interface {
	// List 前台只列根内容且不带正文；后台列出全部内容，带作者与分类
	List(ctx context.Context, q dto.ContentListQuery) (*vo.ContentPage, error)

	// Get 详情，两层回复
	Get(ctx context.Context, id uint64) (*vo.ContentDetail, error)

	// Create 标题与正文必填；引用的用户、分类、父内容在同一事务内逐一检查
	Create(ctx context.Context, actor *entities.User, req *dto.ContentWriteRequest) (*vo.ContentDetail, error)

	// Update 只修改提供了的字段，作者本人或管理员可操作
	Update(ctx context.Context, actor *entities.User, id uint64, req *dto.ContentWriteRequest) (*vo.ContentDetail, error)

	// Delete 回复与点赞/收藏由外键级联删除
	Delete(ctx context.Context, actor *entities.User, id uint64) error

	Kind() entities.ContentKind
}

type contentService[T any, PT entities.ContentPtr[T]] struct {
	db                   *gorm.DB
	repo                 mysql.ContentRepository[T, PT]
	userRepo             mysql.UserRepository
	classificationExists ExistsFunc
	events               notifier
	logger               *core.ZapLogger
	audience             Audience
	kind                 entities.ContentKind
}

// NewContentService classificationExists 用于检查 school_id / category_id 是否存在。
func NewContentService[T any, PT entities.ContentPtr[T]](
	db *gorm.DB,
	repo mysql.ContentRepository[T, PT],
	userRepo mysql.UserRepository,
	classificationExists ExistsFunc,
	publisher EventPublisher,
	logger *core.ZapLogger,
	audience Audience,
) ContentService {
	return &contentService[T, PT]{
		db:                   db,
		repo:                 repo,
		userRepo:             userRepo,
		classificationExists: classificationExists,
		events:               notifier{publisher: publisher, logger: logger},
		logger:               logger,
		audience:             audience,
		kind:                 entities.KindOf[T, PT](),
	}
}

func (s *contentService[T, PT]) Kind() entities.ContentKind { return s.kind }

func (s *contentService[T, PT]) label() string {
	if s.audience == AudienceAdmin {
		return s.kind.AdminLabel
	}
	return s.kind.Label
}

func (s *contentService[T, PT]) notFound(id uint64) string {
	return fmt.Sprintf("ID: %d的%s未找到。", id, s.label())
}

func (s *contentService[T, PT]) List(ctx context.Context, q dto.ContentListQuery) (*vo.ContentPage, error) {
	page := q.Resolve()
	filter := mysql.ContentFilter{Title: strings.TrimSpace(q.Title), Content: strings.TrimSpace(q.Content)}

	var (
		rows  []T
		total int64
		err   error
	)
	withContent := s.audience == AudienceAdmin
	if withContent {
		rows, total, err = s.repo.ListAll(ctx, filter, page.Offset(), page.Limit())
	} else {
		rows, total, err = s.repo.ListRoots(ctx, filter, page.Offset(), page.Limit())
	}
	if err != nil {
		return nil, err
	}

	items := make([]vo.ContentItem, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewContentItem(PT(&rows[i]), withContent))
	}
	return &vo.ContentPage{
		Key:        s.kind.Plural,
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}

func (s *contentService[T, PT]) Get(ctx context.Context, id uint64) (*vo.ContentDetail, error) {
	row, err := s.repo.GetTree(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, s.notFound(id))
	}
	detail := vo.NewContentDetail(PT(row))
	return &detail, nil
}

// checkPrivileged 状态与推荐位只允许管理员设置
func checkPrivileged(actor *entities.User, req *dto.ContentWriteRequest) error {
	if (req.Status != nil || req.IsRecommended != nil) && !actor.IsAdmin() {
		return myErrors.NewUnauthorized("只有管理员可以设置状态或推荐")
	}
	return nil
}

func (s *contentService[T, PT]) classificationOf(req *dto.ContentWriteRequest) *uint64 {
	if s.kind.Name == entities.PostKind.Name {
		return req.SchoolID
	}
	return req.CategoryID
}

// checkReferences 写入前检查外键目标是否存在，给出比数据库约束更明确的提示
func (s *contentService[T, PT]) checkReferences(ctx context.Context, tx *gorm.DB, checks *fieldChecks, ownerID *uint64, classificationID, parentID *uint64) error {
	if err := checks.reference(ctx, tx, "user_id", "用户", ownerID, s.userRepo.Exists); err != nil {
		return err
	}
	if err := checks.reference(ctx, tx, s.kind.ClassificationColumn, s.kind.ClassificationLabel, classificationID, s.classificationExists); err != nil {
		return err
	}
	return checks.reference(ctx, tx, "parent_id", s.kind.Label, parentID, s.repo.Exists)
}

func (s *contentService[T, PT]) parentOf(ctx context.Context, db *gorm.DB, id uint64) (*uint64, error) {
	row, err := s.repo.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return PT(row).Base().ParentID, nil
}

func (s *contentService[T, PT]) Create(ctx context.Context, actor *entities.User, req *dto.ContentWriteRequest) (*vo.ContentDetail, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	if err := checkPrivileged(actor, req); err != nil {
		return nil, err
	}

	checks := &fieldChecks{}
	title, content := trimmed(req.Title), trimmed(req.Content)
	if title == "" {
		checks.fail("title", "标题不能为空")
	}
	if content == "" {
		checks.fail("content", "内容不能为空")
	}
	if err := checks.err(); err != nil {
		return nil, err
	}

	row := new(T)
	rec := PT(row)
	base := rec.Base()
	base.Title = title
	base.Content = content
	base.UserID = actor.ID
	base.ParentID = req.ParentID
	base.Video = req.Video
	base.CoverImage = req.CoverImage
	base.Type = enums.TypeExperience
	if req.Type != nil {
		base.Type = *req.Type
	}
	base.Status = enums.StatusPublished
	if req.Status != nil {
		base.Status = *req.Status
	}
	if req.IsRecommended != nil {
		base.IsRecommended = *req.IsRecommended
	}
	rec.SetClassificationID(s.classificationOf(req))
	rec.SetDifficulty(req.Difficulty)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkReferences(ctx, tx, checks, uint64Ptr(actor.ID), rec.ClassificationID(), base.ParentID); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.repo.Create(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("内容已创建", zap.String("kind", s.kind.Name), zap.Uint64("id", base.ID), zap.Uint64("userID", actor.ID))
	event := producer.ContentCreatedEvent{
		Kind:             s.kind.Name,
		ContentID:        base.ID,
		ParentID:         base.ParentID,
		UserID:           base.UserID,
		ClassificationID: rec.ClassificationID(),
		Title:            base.Title,
	}
	s.events.emit("content_created", func(ctx context.Context, p EventPublisher) error {
		return p.SendContentCreated(ctx, event)
	})

	return s.Get(ctx, base.ID)
}

func (s *contentService[T, PT]) Update(ctx context.Context, actor *entities.User, id uint64, req *dto.ContentWriteRequest) (*vo.ContentDetail, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	if err := checkPrivileged(actor, req); err != nil {
		return nil, err
	}

	checks := &fieldChecks{}
	fields := map[string]any{}
	if req.Title != nil {
		if title := trimmed(req.Title); title == "" {
			checks.fail("title", "标题不能为空")
		} else {
			fields["title"] = title
		}
	}
	if req.Content != nil {
		if content := trimmed(req.Content); content == "" {
			checks.fail("content", "内容不能为空")
		} else {
			fields["content"] = content
		}
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			checks.fail("parent_id", "不能把自身设为父级")
		}
		fields["parent_id"] = *req.ParentID
	}
	classificationID := s.classificationOf(req)
	if classificationID != nil {
		fields[s.kind.ClassificationColumn] = *classificationID
	}
	if req.Video != nil {
		fields["video"] = *req.Video
	}
	if req.CoverImage != nil {
		fields["cover_image"] = *req.CoverImage
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Difficulty != nil && s.kind.Name == entities.QuestionKind.Name {
		fields["difficulty"] = *req.Difficulty
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.IsRecommended != nil {
		fields["is_recommended"] = *req.IsRecommended
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			return notFoundAs(err, s.notFound(id))
		}
		if !auth.CanModify(actor, PT(existing).Base().UserID) {
			return myErrors.NewUnauthorized(fmt.Sprintf("没有权限修改该%s", s.label()))
		}
		if err := s.checkReferences(ctx, tx, checks, nil, classificationID, req.ParentID); err != nil {
			return err
		}
		if err := checks.acyclic(ctx, tx, "parent_id", id, req.ParentID, s.parentOf); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.repo.Updates(ctx, tx, id, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *contentService[T, PT]) Delete(ctx context.Context, actor *entities.User, id uint64) error {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			return notFoundAs(err, s.notFound(id))
		}
		if !auth.CanModify(actor, PT(existing).Base().UserID) {
			return myErrors.NewUnauthorized(fmt.Sprintf("没有权限删除该%s", s.label()))
		}
		return notFoundAs(s.repo.Delete(ctx, tx, id), s.notFound(id))
	})
	if err != nil {
		return err
	}

	s.logger.Info("内容已删除", zap.String("kind", s.kind.Name), zap.Uint64("id", id), zap.Uint64("operatorID", actor.ID))
	event := producer.ContentDeletedEvent{Kind: s.kind.Name, ContentID: id, OperatorID: actor.ID}
	s.events.emit("content_deleted", func(ctx context.Context, p EventPublisher) error {
		return p.SendContentDeleted(ctx, event)
	})
	return nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
