package service

import (
	"context"
	"errors"
	"fmt"

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

// ReactionAdminService 后台维护点赞/收藏关联行。
// 所有写操作都同步调整内容上的计数，计数始终等于关联行数。
type ReactionAdminService interface {
	List(ctx context.Context, q dto.PageQuery) (*vo.ListPage[vo.ReactionVO], error)
	Get(ctx context.Context, id uint64) (*vo.ReactionVO, error)

	// Upsert 按 (content_id, user_id) 查找，不存在则创建；created 报告是否新建
	Upsert(ctx context.Context, req *dto.ReactionWriteRequest) (row *vo.ReactionVO, created bool, err error)

	// Update 把关联行改到另一对 (content_id, user_id)，计数随之从旧内容移到新内容
	Update(ctx context.Context, id uint64, req *dto.ReactionWriteRequest) (*vo.ReactionVO, error)

	Delete(ctx context.Context, id uint64) error

	Kind() entities.ReactionKind
}

type reactionAdminService[T any, PT entities.ContentPtr[T], R any, PR entities.ReactionPtr[R]] struct {
	db           *gorm.DB
	contentRepo  mysql.ContentRepository[T, PT]
	reactionRepo mysql.ReactionRepository[R, PR]
	userRepo     mysql.UserRepository
	logger       *core.ZapLogger
	contentKind  entities.ContentKind
	kind         entities.ReactionKind
}

func NewReactionAdminService[T any, PT entities.ContentPtr[T], R any, PR entities.ReactionPtr[R]](
	db *gorm.DB,
	contentRepo mysql.ContentRepository[T, PT],
	reactionRepo mysql.ReactionRepository[R, PR],
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) ReactionAdminService {
	return &reactionAdminService[T, PT, R, PR]{
		db:           db,
		contentRepo:  contentRepo,
		reactionRepo: reactionRepo,
		userRepo:     userRepo,
		logger:       logger,
		contentKind:  entities.KindOf[T, PT](),
		kind:         entities.ReactionKindOf[R, PR](),
	}
}

func (s *reactionAdminService[T, PT, R, PR]) Kind() entities.ReactionKind { return s.kind }

func (s *reactionAdminService[T, PT, R, PR]) notFound(id uint64) string {
	return fmt.Sprintf("ID: %d的 %s 未找到。", id, s.kind.Label)
}

func (s *reactionAdminService[T, PT, R, PR]) List(ctx context.Context, q dto.PageQuery) (*vo.ListPage[vo.ReactionVO], error) {
	page := q.Resolve()
	rows, total, err := s.reactionRepo.List(ctx, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	items := make([]vo.ReactionVO, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewReactionVO(PR(&rows[i])))
	}
	return &vo.ListPage[vo.ReactionVO]{
		Key:        vo.JSONKey(s.kind) + "s",
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}

func (s *reactionAdminService[T, PT, R, PR]) Get(ctx context.Context, id uint64) (*vo.ReactionVO, error) {
	row, err := s.reactionRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundAs(err, s.notFound(id))
	}
	out := vo.NewReactionVO(PR(row))
	return &out, nil
}

// checkPair 内容与用户都必须存在
func (s *reactionAdminService[T, PT, R, PR]) checkPair(ctx context.Context, tx *gorm.DB, contentID, userID uint64) error {
	checks := &fieldChecks{}
	if contentID == 0 {
		checks.fail(s.kind.ContentColumn, "必须填写")
	} else if err := checks.reference(ctx, tx, s.kind.ContentColumn, s.contentKind.AdminLabel, &contentID, s.contentRepo.Exists); err != nil {
		return err
	}
	if err := checks.reference(ctx, tx, "user_id", "用户", &userID, s.userRepo.Exists); err != nil {
		return err
	}
	return checks.err()
}

func (s *reactionAdminService[T, PT, R, PR]) Upsert(ctx context.Context, req *dto.ReactionWriteRequest) (*vo.ReactionVO, bool, error) {
	contentID := req.Target()
	var (
		id      uint64
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkPair(ctx, tx, contentID, req.UserID); err != nil {
			return err
		}
		existing, err := s.reactionRepo.FindPair(ctx, tx, contentID, req.UserID)
		if err == nil {
			id = PR(existing).RecordID()
			return nil
		}
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			return err
		}

		row := new(R)
		PR(row).SetPair(contentID, req.UserID)
		if err := s.reactionRepo.Create(ctx, tx, row); err != nil {
			return err
		}
		id = PR(row).RecordID()
		created = true
		return s.contentRepo.AdjustCounter(ctx, tx, contentID, s.kind.CounterColumn, 1)
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info("后台创建关联行", zap.String("reaction", s.kind.Name), zap.Uint64("id", id))
	}
	out, err := s.Get(ctx, id)
	return out, created, err
}

func (s *reactionAdminService[T, PT, R, PR]) Update(ctx context.Context, id uint64, req *dto.ReactionWriteRequest) (*vo.ReactionVO, error) {
	contentID := req.Target()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.reactionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return notFoundAs(err, s.notFound(id))
		}
		oldContentID, oldUserID := PR(existing).Pair()
		if contentID == oldContentID && req.UserID == oldUserID {
			return nil
		}
		if err := s.checkPair(ctx, tx, contentID, req.UserID); err != nil {
			return err
		}
		if err := s.reactionRepo.MovePair(ctx, tx, id, contentID, req.UserID); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return myErrors.NewValidation("参数校验失败",
					fmt.Sprintf("%s: 该用户对 ID 为 %d 的%s已有记录", s.kind.ContentColumn, contentID, s.contentKind.AdminLabel))
			}
			return err
		}
		if contentID == oldContentID {
			return nil
		}
		if err := s.contentRepo.AdjustCounter(ctx, tx, oldContentID, s.kind.CounterColumn, -1); err != nil {
			return err
		}
		return s.contentRepo.AdjustCounter(ctx, tx, contentID, s.kind.CounterColumn, 1)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *reactionAdminService[T, PT, R, PR]) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.reactionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return notFoundAs(err, s.notFound(id))
		}
		contentID, _ := PR(existing).Pair()
		if err := s.reactionRepo.Delete(ctx, tx, id); err != nil {
			return notFoundAs(err, s.notFound(id))
		}
		return s.contentRepo.AdjustCounter(ctx, tx, contentID, s.kind.CounterColumn, -1)
	})
}
