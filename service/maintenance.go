package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// MaintenanceService 以关联表为准修复点赞数与收藏数，只由管理员手动触发。
type MaintenanceService interface {
	ReconcileCounters(ctx context.Context) (*vo.MaintenanceReport, error)
}

// counterReconciler 修复一张内容表上的一个计数列
type counterReconciler struct {
	table, column, reactionTable string
	run                          func(ctx context.Context, db *gorm.DB, column, reactionTable string) (int64, error)
}

type maintenanceService struct {
	db          *gorm.DB
	reconcilers []counterReconciler
	logger      *core.ZapLogger
}

func NewMaintenanceService(
	db *gorm.DB,
	postRepo mysql.ContentRepository[entities.Post, *entities.Post],
	questionRepo mysql.ContentRepository[entities.Question, *entities.Question],
	logger *core.ZapLogger,
) MaintenanceService {
	var reconcilers []counterReconciler
	for _, kind := range []entities.ReactionKind{entities.PostLikeKind, entities.PostFavoriteKind} {
		reconcilers = append(reconcilers, counterReconciler{kind.ContentTable, kind.CounterColumn, kind.Table, postRepo.ReconcileCounter})
	}
	for _, kind := range []entities.ReactionKind{entities.QuestionLikeKind, entities.QuestionFavoriteKind} {
		reconcilers = append(reconcilers, counterReconciler{kind.ContentTable, kind.CounterColumn, kind.Table, questionRepo.ReconcileCounter})
	}
	return &maintenanceService{db: db, reconcilers: reconcilers, logger: logger}
}

func (s *maintenanceService) ReconcileCounters(ctx context.Context) (*vo.MaintenanceReport, error) {
	report := &vo.MaintenanceReport{Repaired: make(map[string]int64, len(s.reconcilers))}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range s.reconcilers {
			n, err := r.run(ctx, tx, r.column, r.reactionTable)
			if err != nil {
				return err
			}
			report.Repaired[r.table+"."+r.column] = n
			report.Total += n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("计数修复完成", zap.Int64("total", report.Total), zap.Any("repaired", report.Repaired))
	return report, nil
}
