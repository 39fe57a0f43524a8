package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
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

// ReactionService 前台点赞/收藏。四种组合（帖子/问答 × 点赞/收藏）共用一套实现。
type ReactionService interface {
	// Toggle 没有关联行则创建并计数 +1，已有则删除并计数 -1（不低于 0）。
	// 内容行在事务内加锁，同一内容上的并发切换按顺序执行。
	Toggle(ctx context.Context, actor *entities.User, contentID uint64) (*vo.ToggleResult, error)

	// ListMine 当前用户点赞/收藏过的内容，不带正文，带父内容与分类
	ListMine(ctx context.Context, actor *entities.User, q dto.PageQuery) (*vo.ContentPage, error)

	ContentKind() entities.ContentKind
	ReactionKind() entities.ReactionKind
}

type reactionService[T any, PT entities.ContentPtr[T], R any, PR entities.ReactionPtr[R]] struct {
	db           *gorm.DB
	contentRepo  mysql.ContentRepository[T, PT]
	reactionRepo mysql.ReactionRepository[R, PR]
	events       notifier
	logger       *core.ZapLogger
	contentKind  entities.ContentKind
	reactionKind entities.ReactionKind
}

func NewReactionService[T any, PT entities.ContentPtr[T], R any, PR entities.ReactionPtr[R]](
	db *gorm.DB,
	contentRepo mysql.ContentRepository[T, PT],
	reactionRepo mysql.ReactionRepository[R, PR],
	publisher EventPublisher,
	logger *core.ZapLogger,
) ReactionService {
	return &reactionService[T, PT, R, PR]{
		db:           db,
		contentRepo:  contentRepo,
		reactionRepo: reactionRepo,
		events:       notifier{publisher: publisher, logger: logger},
		logger:       logger,
		contentKind:  entities.KindOf[T, PT](),
		reactionKind: entities.ReactionKindOf[R, PR](),
	}
}

func (s *reactionService[T, PT, R, PR]) ContentKind() entities.ContentKind { return s.contentKind }
func (s *reactionService[T, PT, R, PR]) ReactionKind() entities.ReactionKind { return s.reactionKind }

func (s *reactionService[T, PT, R, PR]) Toggle(ctx context.Context, actor *entities.User, contentID uint64) (*vo.ToggleResult, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	if contentID == 0 {
		return nil, myErrors.NewNotFound("需要传入" + s.contentKind.IDField)
	}

	result := &vo.ToggleResult{ContentID: contentID}
	column := s.reactionKind.CounterColumn
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.contentRepo.LockByID(ctx, tx, contentID); err != nil {
			return notFoundAs(err, s.contentKind.MissingLabel+"不存在。")
		}

		existing, err := s.reactionRepo.FindPair(ctx, tx, contentID, actor.ID)
		switch {
		case err == nil:
			if err := s.reactionRepo.Delete(ctx, tx, PR(existing).RecordID()); err != nil {
				return err
			}
			if err := s.contentRepo.AdjustCounter(ctx, tx, contentID, column, -1); err != nil {
				return err
			}
			result.Reacted = false
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			row := new(R)
			PR(row).SetPair(contentID, actor.ID)
			// 保存点内插入，撞上唯一约束时只回滚这一步
			insertErr := tx.Transaction(func(sp *gorm.DB) error {
				if err := s.reactionRepo.Create(ctx, sp, row); err != nil {
					return err
				}
				return s.contentRepo.AdjustCounter(ctx, sp, contentID, column, 1)
			})
			if insertErr != nil && !errors.Is(insertErr, gorm.ErrDuplicatedKey) {
				return insertErr
			}
			if insertErr != nil {
				s.logger.Warn("并发重复插入关联行，按已点赞处理", zap.String("reaction", s.reactionKind.Name), zap.Uint64("contentID", contentID), zap.Uint64("userID", actor.ID))
			}
			result.Reacted = true
		default:
			return err
		}

		count, err := s.contentRepo.Counter(ctx, tx, contentID, column)
		if err != nil {
			return err
		}
		result.Count = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Reacted {
		result.Message = s.reactionKind.AddedMessage
	} else {
		result.Message = s.reactionKind.RemovedMessage
	}

	event := producer.ReactionToggledEvent{
		Reaction:  s.reactionKind.Name,
		ContentID: contentID,
		UserID:    actor.ID,
		Reacted:   result.Reacted,
		Count:     result.Count,
	}
	s.events.emit("reaction_toggled", func(ctx context.Context, p EventPublisher) error {
		return p.SendReactionToggled(ctx, event)
	})
	return result, nil
}

func (s *reactionService[T, PT, R, PR]) ListMine(ctx context.Context, actor *entities.User, q dto.PageQuery) (*vo.ContentPage, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	page := q.Resolve()
	rows, total, err := s.contentRepo.ListReactedBy(ctx, s.reactionKind.Table, actor.ID, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}

	parentIDs := make([]uint64, 0, len(rows))
	for i := range rows {
		if pid := PT(&rows[i]).Base().ParentID; pid != nil {
			parentIDs = append(parentIDs, *pid)
		}
	}
	parents, err := s.contentRepo.ListByIDs(ctx, parentIDs)
	if err != nil {
		return nil, err
	}
	parentByID := make(map[uint64]vo.ContentItem, len(parents))
	for i := range parents {
		item := vo.NewContentItem(PT(&parents[i]), false)
		parentByID[item.ID] = item
	}

	items := make([]vo.ContentItem, 0, len(rows))
	for i := range rows {
		item := vo.NewContentItem(PT(&rows[i]), false)
		if item.ParentID != nil {
			if parent, ok := parentByID[*item.ParentID]; ok {
				item.Parent = &parent
			}
		}
		items = append(items, item)
	}
	return &vo.ContentPage{
		Key:        s.contentKind.Plural,
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}
