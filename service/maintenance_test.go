package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/testutils"
)

// TestMaintenanceService_ReconcileCounters 计数按关联表行数修复，已正确的行不计入
func TestMaintenanceService_ReconcileCounters(t *testing.T) {
	f := newFixture(t)
	svc := NewMaintenanceService(f.db, f.posts, f.questions, f.logger)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	fan := testutils.CreateTestUser(f.db)
	drifted := testutils.CreateTestPost(f.db, user.ID, testutils.WithLikes(7))
	healthy := testutils.CreateTestPost(f.db, user.ID)
	question := testutils.CreateTestQuestion(f.db, user.ID, nil)

	for _, id := range []uint64{drifted.ID, healthy.ID} {
		_, err := f.postLikes().Toggle(ctx, fan, id)
		require.NoError(t, err)
	}
	_, err := f.questionFavorites().Toggle(ctx, fan, question.ID)
	require.NoError(t, err)
	require.NoError(t, f.db.Table("questions").Where("id = ?", question.ID).Update("favorite_count", 0).Error)

	report, err := svc.ReconcileCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Repaired["posts.likes_count"])
	assert.Equal(t, int64(0), report.Repaired["posts.favorite_count"])
	assert.Equal(t, int64(1), report.Repaired["questions.favorite_count"])
	assert.Equal(t, int64(0), report.Repaired["questions.likes_count"])
	assert.Equal(t, int64(2), report.Total)

	assert.Equal(t, uint64(1), f.counter(t, "posts", drifted.ID, "likes_count"))
	assert.Equal(t, uint64(1), f.counter(t, "posts", healthy.ID, "likes_count"))
	assert.Equal(t, uint64(1), f.counter(t, "questions", question.ID, "favorite_count"))

	again, err := svc.ReconcileCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Total)
}
