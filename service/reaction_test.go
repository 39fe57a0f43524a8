package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/testutils"
)

// TestReactionService_Toggle 连续切换时关联行与计数交替变化
func TestReactionService_Toggle(t *testing.T) {
	f := newFixture(t)
	svc := f.postLikes()
	ctx := context.Background()

	author := testutils.CreateTestUser(f.db)
	fan := testutils.CreateTestUser(f.db)
	post := testutils.CreateTestPost(f.db, author.ID)

	for i := 1; i <= 4; i++ {
		result, err := svc.Toggle(ctx, fan, post.ID)
		require.NoError(t, err)

		wantReacted := i%2 == 1
		assert.Equal(t, wantReacted, result.Reacted, "toggle #%d", i)
		assert.Equal(t, post.ID, result.ContentID)
		if wantReacted {
			assert.Equal(t, "点赞成功。", result.Message)
			assert.Equal(t, uint64(1), result.Count)
			assert.Equal(t, int64(1), f.count(t, "post_likes"))
		} else {
			assert.Equal(t, "取消赞成功。", result.Message)
			assert.Equal(t, uint64(0), result.Count)
			assert.Equal(t, int64(0), f.count(t, "post_likes"))
		}
		assert.Equal(t, result.Count, f.counter(t, "posts", post.ID, "likes_count"))
	}
}

// TestReactionService_ToggleCounterFloor 计数已漂移为 0 时取消不会变成负数
func TestReactionService_ToggleCounterFloor(t *testing.T) {
	f := newFixture(t)
	svc := f.postLikes()
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	post := testutils.CreateTestPost(f.db, user.ID)

	_, err := svc.Toggle(ctx, user, post.ID)
	require.NoError(t, err)
	require.NoError(t, f.db.Table("posts").Where("id = ?", post.ID).Update("likes_count", 0).Error)

	result, err := svc.Toggle(ctx, user, post.ID)
	require.NoError(t, err)
	assert.False(t, result.Reacted)
	assert.Equal(t, uint64(0), result.Count)
	assert.Equal(t, uint64(0), f.counter(t, "posts", post.ID, "likes_count"))
}

// staleLikeRepo 的 FindPair 总是报告不存在，模拟另一个请求刚插入同一对关联行
type staleLikeRepo struct {
	mysql.ReactionRepository[entities.PostLike, *entities.PostLike]
}

func (staleLikeRepo) FindPair(context.Context, *gorm.DB, uint64, uint64) (*entities.PostLike, error) {
	return nil, commonerrors.ErrRepoNotFound
}

// TestReactionService_ToggleConcurrentInsert 插入撞上唯一约束时按已点赞返回，计数不重复累加
func TestReactionService_ToggleConcurrentInsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	post := testutils.CreateTestPost(f.db, user.ID)

	_, err := f.postLikes().Toggle(ctx, user, post.ID)
	require.NoError(t, err)

	repo := staleLikeRepo{mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](f.db, f.logger)}
	svc := NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](f.db, f.posts, repo, nil, f.logger)

	result, err := svc.Toggle(ctx, user, post.ID)
	require.NoError(t, err)
	assert.True(t, result.Reacted)
	assert.Equal(t, uint64(1), result.Count)
	assert.Equal(t, "点赞成功。", result.Message)
	assert.Equal(t, int64(1), f.count(t, "post_likes"))
	assert.Equal(t, uint64(1), f.counter(t, "posts", post.ID, "likes_count"))
}

// TestReactionService_ToggleErrors 测试参数与权限错误
func TestReactionService_ToggleErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	banned := testutils.CreateTestUser(f.db, testutils.WithRole(enums.RoleBanned))
	post := testutils.CreateTestPost(f.db, user.ID)

	tests := []struct {
		name      string
		svc       ReactionService
		contentID uint64
		actor     bool
		banned    bool
		kind      myErrors.Kind
		message   string
	}{
		{name: "missing post id", svc: f.postLikes(), contentID: 0, actor: true, kind: myErrors.KindNotFound, message: "需要传入postId"},
		{name: "missing question id", svc: f.questionFavorites(), contentID: 0, actor: true, kind: myErrors.KindNotFound, message: "需要传入questionId"},
		{name: "unknown post", svc: f.postLikes(), contentID: 99999, actor: true, kind: myErrors.KindNotFound, message: "帖子不存在。"},
		{name: "unknown question", svc: f.questionFavorites(), contentID: 99999, actor: true, kind: myErrors.KindNotFound, message: "题目不存在。"},
		{name: "anonymous", svc: f.postLikes(), contentID: post.ID, kind: myErrors.KindUnauthorized},
		{name: "banned", svc: f.postLikes(), contentID: post.ID, actor: true, banned: true, kind: myErrors.KindUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := user
			switch {
			case tt.banned:
				actor = banned
			case !tt.actor:
				actor = nil
			}
			_, err := tt.svc.Toggle(ctx, actor, tt.contentID)
			appErr := requireAppError(t, err, tt.kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, appErr.Message)
			}
		})
	}
	assert.Equal(t, uint64(0), f.counter(t, "posts", post.ID, "likes_count"))
}

// TestReactionService_KindsAreIndependent 点赞与收藏、帖子与问答各自计数
func TestReactionService_KindsAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	question := testutils.CreateTestQuestion(f.db, user.ID, nil)

	result, err := f.questionFavorites().Toggle(ctx, user, question.ID)
	require.NoError(t, err)
	assert.True(t, result.Reacted)
	assert.Equal(t, "收藏成功。", result.Message)

	assert.Equal(t, uint64(1), f.counter(t, "questions", question.ID, "favorite_count"))
	assert.Equal(t, uint64(0), f.counter(t, "questions", question.ID, "likes_count"))
	assert.Equal(t, int64(0), f.count(t, "post_favorites"))
}

// TestReactionService_ListMine 列出当前用户点过赞的内容，回复带父内容
func TestReactionService_ListMine(t *testing.T) {
	f := newFixture(t)
	svc := f.postLikes()
	ctx := context.Background()

	author := testutils.CreateTestUser(f.db)
	fan := testutils.CreateTestUser(f.db)
	school := testutils.CreateTestSchool(f.db, "北京大学")
	root := testutils.CreateTestPostInSchool(f.db, author.ID, school.ID, testutils.WithTitle("根帖"))
	reply := testutils.CreateTestPost(f.db, author.ID, testutils.WithParent(root.ID))
	testutils.CreateTestPost(f.db, author.ID)

	for _, id := range []uint64{root.ID, reply.ID} {
		_, err := svc.Toggle(ctx, fan, id)
		require.NoError(t, err)
	}

	page, err := svc.ListMine(ctx, fan, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, "posts", page.Key)
	assert.Equal(t, int64(2), page.Pagination.Total)
	require.Len(t, page.Items, 2)

	// id 倒序：回复在前
	assert.Equal(t, reply.ID, page.Items[0].ID)
	require.NotNil(t, page.Items[0].Parent)
	assert.Equal(t, "根帖", page.Items[0].Parent.Title)
	assert.Nil(t, page.Items[0].Content)

	assert.Equal(t, root.ID, page.Items[1].ID)
	assert.Nil(t, page.Items[1].Parent)
	require.NotNil(t, page.Items[1].School)
	assert.Equal(t, "北京大学", page.Items[1].School.Name)

	empty, err := svc.ListMine(ctx, author, dto.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, int64(0), empty.Pagination.Total)
}
