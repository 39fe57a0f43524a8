package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/repo/redis"
	"github.com/Xushengqwer/forum_service/testutils"
)

// fixture 一个测试用例独享的数据库与全部仓库
type fixture struct {
	db     *gorm.DB
	logger *core.ZapLogger

	users      mysql.UserRepository
	schools    mysql.SchoolRepository
	categories mysql.CategoryRepository
	links      mysql.SchoolCategoryRepository
	posts      mysql.ContentRepository[entities.Post, *entities.Post]
	questions  mysql.ContentRepository[entities.Question, *entities.Question]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutils.SetupTestDB(t)
	logger := testutils.NewLogger(t)
	return &fixture{
		db:         db,
		logger:     logger,
		users:      mysql.NewUserRepository(db, logger),
		schools:    mysql.NewSchoolRepository(db, logger),
		categories: mysql.NewCategoryRepository(db, logger),
		links:      mysql.NewSchoolCategoryRepository(db, logger),
		posts:      mysql.NewContentRepository[entities.Post, *entities.Post](db, logger),
		questions:  mysql.NewContentRepository[entities.Question, *entities.Question](db, logger),
	}
}

func (f *fixture) postService(audience Audience) ContentService {
	return NewContentService[entities.Post, *entities.Post](f.db, f.posts, f.users, f.schools.Exists, nil, f.logger, audience)
}

func (f *fixture) questionService(audience Audience) ContentService {
	return NewContentService[entities.Question, *entities.Question](f.db, f.questions, f.users, f.categories.Exists, nil, f.logger, audience)
}

func (f *fixture) postLikes() ReactionService {
	repo := mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](f.db, f.logger)
	return NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](f.db, f.posts, repo, nil, f.logger)
}

func (f *fixture) questionFavorites() ReactionService {
	repo := mysql.NewReactionRepository[entities.QuestionFavorite, *entities.QuestionFavorite](f.db, f.logger)
	return NewReactionService[entities.Question, *entities.Question, entities.QuestionFavorite, *entities.QuestionFavorite](f.db, f.questions, repo, nil, f.logger)
}

// counter 直接读库中的计数列
func (f *fixture) counter(t *testing.T, table string, id uint64, column string) uint64 {
	t.Helper()
	var values []uint64
	require.NoError(t, f.db.Table(table).Where("id = ?", id).Pluck(column, &values).Error)
	require.Len(t, values, 1)
	return values[0]
}

func (f *fixture) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Table(table).Count(&n).Error)
	return n
}

// requireAppError 断言错误为指定分类的 AppError 并返回它
func requireAppError(t *testing.T, err error, kind myErrors.Kind) *myErrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := myErrors.As(err)
	require.Truef(t, ok, "expected AppError, got %T: %v", err, err)
	require.Equalf(t, kind, appErr.Kind, "unexpected kind, message=%q", appErr.Message)
	return appErr
}

func strPtr(s string) *string { return &s }

// memorySessions 会话存储的内存实现
type memorySessions struct {
	mu     sync.Mutex
	tokens map[uint64]string
}

var _ redis.SessionRepository = (*memorySessions)(nil)

func newMemorySessions() *memorySessions {
	return &memorySessions{tokens: map[uint64]string{}}
}

func (m *memorySessions) Save(_ context.Context, userID uint64, token string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[userID] = token
	return nil
}

func (m *memorySessions) Get(_ context.Context, userID uint64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[userID]
	if !ok {
		return "", redis.ErrSessionMissing
	}
	return token, nil
}

func (m *memorySessions) Delete(_ context.Context, userID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, userID)
	return nil
}
