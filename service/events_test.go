package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/testutils"
)

// recordingPublisher 把收到的事件转发到通道，发送是异步的
type recordingPublisher struct {
	events chan any
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan any, 8)}
}

func (p *recordingPublisher) SendContentCreated(_ context.Context, e producer.ContentCreatedEvent) error {
	p.events <- e
	return nil
}

func (p *recordingPublisher) SendContentDeleted(_ context.Context, e producer.ContentDeletedEvent) error {
	p.events <- e
	return nil
}

func (p *recordingPublisher) SendReactionToggled(_ context.Context, e producer.ReactionToggledEvent) error {
	p.events <- e
	return nil
}

func (p *recordingPublisher) next(t *testing.T) any {
	t.Helper()
	select {
	case e := <-p.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("等待事件超时")
		return nil
	}
}

func TestEvents_ContentLifecycle(t *testing.T) {
	f := newFixture(t)
	pub := newRecordingPublisher()
	posts := NewContentService[entities.Post, *entities.Post](f.db, f.posts, f.users, f.schools.Exists, pub, f.logger, AudienceFront)
	likeRepo := mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](f.db, f.logger)
	likes := NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](f.db, f.posts, likeRepo, pub, f.logger)
	author := testutils.CreateTestUser(f.db)
	ctx := context.Background()

	detail, err := posts.Create(ctx, author, &dto.ContentWriteRequest{Title: strPtr("标题"), Content: strPtr("正文")})
	require.NoError(t, err)
	created, ok := pub.next(t).(producer.ContentCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "post", created.Kind)
	assert.Equal(t, detail.ID, created.ContentID)
	assert.Equal(t, author.ID, created.UserID)
	assert.Equal(t, "标题", created.Title)

	_, err = likes.Toggle(ctx, author, detail.ID)
	require.NoError(t, err)
	toggled, ok := pub.next(t).(producer.ReactionToggledEvent)
	require.True(t, ok)
	assert.Equal(t, "post_like", toggled.Reaction)
	assert.True(t, toggled.Reacted)
	assert.Equal(t, uint64(1), toggled.Count)

	require.NoError(t, posts.Delete(ctx, author, detail.ID))
	deleted, ok := pub.next(t).(producer.ContentDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, detail.ID, deleted.ContentID)
	assert.Equal(t, author.ID, deleted.OperatorID)
}

func TestEvents_NoneOnFailure(t *testing.T) {
	f := newFixture(t)
	pub := newRecordingPublisher()
	posts := NewContentService[entities.Post, *entities.Post](f.db, f.posts, f.users, f.schools.Exists, pub, f.logger, AudienceFront)

	_, err := posts.Create(context.Background(), testutils.CreateTestUser(f.db), &dto.ContentWriteRequest{Title: strPtr(" ")})
	require.Error(t, err)

	select {
	case e := <-pub.events:
		t.Fatalf("校验失败不应发送事件: %#v", e)
	case <-time.After(100 * time.Millisecond):
	}
}
