package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/testutils"
)

// TestContentService_Create 测试创建帖子时的校验与引用检查
func TestContentService_Create(t *testing.T) {
	f := newFixture(t)
	svc := f.postService(AudienceFront)
	ctx := context.Background()

	author := testutils.CreateTestUser(f.db)
	school := testutils.CreateTestSchool(f.db, "清华大学")
	missing := uint64(99999)

	tests := []struct {
		name        string
		actor       *entities.User
		req         *dto.ContentWriteRequest
		wantKind    myErrors.Kind
		wantDetails []string
		wantErr     bool
	}{
		{
			name:  "create root post in school",
			actor: author,
			req:   &dto.ContentWriteRequest{Title: strPtr("  备考经验  "), Content: strPtr("每天刷题"), SchoolID: &school.ID},
		},
		{
			name:        "blank title and content",
			actor:       author,
			req:         &dto.ContentWriteRequest{Title: strPtr("   "), Content: strPtr("")},
			wantErr:     true,
			wantKind:    myErrors.KindValidation,
			wantDetails: []string{"title: 标题不能为空", "content: 内容不能为空"},
		},
		{
			name:     "missing school and parent",
			actor:    author,
			req:      &dto.ContentWriteRequest{Title: strPtr("t"), Content: strPtr("c"), SchoolID: &missing, ParentID: &missing},
			wantErr:  true,
			wantKind: myErrors.KindValidation,
			wantDetails: []string{
				"school_id: ID 为 99999 的学校不存在",
				"parent_id: ID 为 99999 的文章不存在",
			},
		},
		{
			name:     "normal user cannot recommend",
			actor:    author,
			req:      &dto.ContentWriteRequest{Title: strPtr("t"), Content: strPtr("c"), IsRecommended: new(bool)},
			wantErr:  true,
			wantKind: myErrors.KindUnauthorized,
		},
		{
			name:     "anonymous",
			actor:    nil,
			req:      &dto.ContentWriteRequest{Title: strPtr("t"), Content: strPtr("c")},
			wantErr:  true,
			wantKind: myErrors.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.count(t, "posts")
			detail, err := svc.Create(ctx, tt.actor, tt.req)

			if tt.wantErr {
				appErr := requireAppError(t, err, tt.wantKind)
				if tt.wantDetails != nil {
					assert.Equal(t, tt.wantDetails, appErr.Details)
				}
				assert.Equal(t, before, f.count(t, "posts"), "failed create must not persist rows")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "备考经验", detail.Title)
			require.NotNil(t, detail.Content)
			assert.Equal(t, "每天刷题", *detail.Content)
			assert.Equal(t, author.ID, detail.UserID)
			assert.Equal(t, enums.StatusPublished, detail.Status)
			assert.Equal(t, enums.TypeExperience, detail.Type)
			require.NotNil(t, detail.School)
			assert.Equal(t, "清华大学", detail.School.Name)
			require.NotNil(t, detail.User)
			assert.Equal(t, author.Username, detail.User.Username)
			assert.Empty(t, detail.Children)
		})
	}
}

// TestContentService_CreateReply 回复挂在父内容下，详情中可见
func TestContentService_CreateReply(t *testing.T) {
	f := newFixture(t)
	svc := f.questionService(AudienceFront)
	ctx := context.Background()

	author := testutils.CreateTestUser(f.db)
	category := testutils.CreateTestCategory(f.db, "数据结构", nil)
	difficulty := 3

	root, err := svc.Create(ctx, author, &dto.ContentWriteRequest{
		Title: strPtr("链表反转"), Content: strPtr("如何原地反转"), CategoryID: &category.ID, Difficulty: &difficulty,
	})
	require.NoError(t, err)
	require.NotNil(t, root.Difficulty)
	assert.Equal(t, 3, *root.Difficulty)
	require.NotNil(t, root.Category)
	assert.Equal(t, "数据结构", root.Category.Name)

	_, err = svc.Create(ctx, author, &dto.ContentWriteRequest{Title: strPtr("回复"), Content: strPtr("三指针"), ParentID: &root.ID})
	require.NoError(t, err)

	detail, err := svc.Get(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, detail.Children, 1)
	assert.Equal(t, "三指针", *detail.Children[0].Content)
}

// TestContentService_GetTwoLevels 详情只展开两层回复
func TestContentService_GetTwoLevels(t *testing.T) {
	f := newFixture(t)
	svc := f.postService(AudienceFront)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	root := testutils.CreateTestPost(f.db, user.ID)
	reply := testutils.CreateTestPost(f.db, user.ID, testutils.WithParent(root.ID))
	nested := testutils.CreateTestPost(f.db, user.ID, testutils.WithParent(reply.ID))
	testutils.CreateTestPost(f.db, user.ID, testutils.WithParent(nested.ID))

	detail, err := svc.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, root.ID, detail.ID)
	require.Len(t, detail.Children, 1)
	assert.Equal(t, reply.ID, detail.Children[0].ID)
	require.Len(t, detail.Children[0].Children, 1)
	assert.Equal(t, nested.ID, detail.Children[0].Children[0].ID)
	require.NotNil(t, detail.Children[0].User)
	assert.Equal(t, user.ID, detail.Children[0].User.ID)
}

// TestContentService_GetNotFound 前台与后台的提示文案不同
func TestContentService_GetNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		svc     ContentService
		message string
	}{
		{"front post", f.postService(AudienceFront), "ID: 42的文章未找到。"},
		{"admin post", f.postService(AudienceAdmin), "ID: 42的帖子未找到。"},
		{"front question", f.questionService(AudienceFront), "ID: 42的题目未找到。"},
		{"admin question", f.questionService(AudienceAdmin), "ID: 42的问题未找到。"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Get(ctx, 42)
			appErr := requireAppError(t, err, myErrors.KindNotFound)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

// TestContentService_List 前台只列根内容且不带正文，后台全部列出
func TestContentService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	first := testutils.CreateTestPost(f.db, user.ID, testutils.WithTitle("考研数学复习"))
	second := testutils.CreateTestPost(f.db, user.ID, testutils.WithTitle("英语作文模板"))
	testutils.CreateTestPost(f.db, user.ID, testutils.WithParent(first.ID), testutils.WithTitle("数学回复"))

	t.Run("front lists roots newest first", func(t *testing.T) {
		page, err := f.postService(AudienceFront).List(ctx, dto.ContentListQuery{})
		require.NoError(t, err)
		assert.Equal(t, "posts", page.Key)
		assert.Equal(t, int64(2), page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.CurrentPage)
		assert.Equal(t, 10, page.Pagination.PageSize)
		require.Len(t, page.Items, 2)
		assert.Equal(t, second.ID, page.Items[0].ID)
		assert.Equal(t, first.ID, page.Items[1].ID)
		for _, item := range page.Items {
			assert.Nil(t, item.Content)
		}
	})

	t.Run("front title filter", func(t *testing.T) {
		page, err := f.postService(AudienceFront).List(ctx, dto.ContentListQuery{Title: "数学"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, first.ID, page.Items[0].ID)
	})

	t.Run("front pagination", func(t *testing.T) {
		page, err := f.postService(AudienceFront).List(ctx, dto.ContentListQuery{PageQuery: dto.PageQuery{CurrentPage: "2", PageSize: "1"}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Pagination.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, first.ID, page.Items[0].ID)
	})

	t.Run("admin lists everything with content", func(t *testing.T) {
		page, err := f.postService(AudienceAdmin).List(ctx, dto.ContentListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Pagination.Total)
		require.Len(t, page.Items, 3)
		for _, item := range page.Items {
			assert.NotNil(t, item.Content)
			assert.NotNil(t, item.User)
		}
	})
}

// TestContentService_Update 测试作者、管理员与他人的修改权限
func TestContentService_Update(t *testing.T) {
	f := newFixture(t)
	svc := f.postService(AudienceFront)
	ctx := context.Background()

	author := testutils.CreateTestUser(f.db)
	other := testutils.CreateTestUser(f.db)
	admin := testutils.CreateTestUser(f.db, testutils.WithRole(enums.RoleAdmin))
	post := testutils.CreateTestPost(f.db, author.ID, testutils.WithTitle("原标题"))

	t.Run("author updates title", func(t *testing.T) {
		detail, err := svc.Update(ctx, author, post.ID, &dto.ContentWriteRequest{Title: strPtr("新标题")})
		require.NoError(t, err)
		assert.Equal(t, "新标题", detail.Title)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, other, post.ID, &dto.ContentWriteRequest{Title: strPtr("x")})
		appErr := requireAppError(t, err, myErrors.KindUnauthorized)
		assert.Equal(t, "没有权限修改该文章", appErr.Message)
	})

	t.Run("admin recommends", func(t *testing.T) {
		recommended := true
		archived := enums.StatusArchived
		detail, err := svc.Update(ctx, admin, post.ID, &dto.ContentWriteRequest{IsRecommended: &recommended, Status: &archived})
		require.NoError(t, err)
		assert.True(t, detail.IsRecommended)
		assert.Equal(t, enums.StatusArchived, detail.Status)
	})

	t.Run("self parent", func(t *testing.T) {
		_, err := svc.Update(ctx, author, post.ID, &dto.ContentWriteRequest{ParentID: &post.ID})
		appErr := requireAppError(t, err, myErrors.KindValidation)
		assert.Contains(t, appErr.Details, "parent_id: 不能把自身设为父级")
	})

	t.Run("descendant as parent", func(t *testing.T) {
		reply := testutils.CreateTestPost(f.db, other.ID, testutils.WithParent(post.ID))
		nested := testutils.CreateTestPost(f.db, other.ID, testutils.WithParent(reply.ID))

		for _, parentID := range []uint64{reply.ID, nested.ID} {
			_, err := svc.Update(ctx, author, post.ID, &dto.ContentWriteRequest{ParentID: &parentID})
			appErr := requireAppError(t, err, myErrors.KindValidation)
			assert.Equal(t, []string{"parent_id: 不能把自己的下级设为父级"}, appErr.Details)
		}

		page, err := svc.List(ctx, dto.ContentListQuery{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, post.ID, page.Items[0].ID)

		// 把回复挂到另一个根下仍然允许
		otherRoot := testutils.CreateTestPost(f.db, author.ID)
		moved, err := svc.Update(ctx, admin, nested.ID, &dto.ContentWriteRequest{ParentID: &otherRoot.ID})
		require.NoError(t, err)
		assert.Equal(t, &otherRoot.ID, moved.ParentID)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := svc.Update(ctx, author, post.ID, &dto.ContentWriteRequest{Title: strPtr(" ")})
		requireAppError(t, err, myErrors.KindValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, author, 99999, &dto.ContentWriteRequest{Title: strPtr("x")})
		requireAppError(t, err, myErrors.KindNotFound)
	})
}

// TestContentService_Delete 删除根内容时回复与点赞级联删除
func TestContentService_Delete(t *testing.T) {
	f := newFixture(t)
	svc := f.postService(AudienceFront)
	ctx := context.Background()

	author := testutils.CreateTestUser(f.db)
	other := testutils.CreateTestUser(f.db)
	root := testutils.CreateTestPost(f.db, author.ID)
	testutils.CreateTestPost(f.db, other.ID, testutils.WithParent(root.ID))
	_, err := f.postLikes().Toggle(ctx, other, root.ID)
	require.NoError(t, err)

	err = svc.Delete(ctx, other, root.ID)
	appErr := requireAppError(t, err, myErrors.KindUnauthorized)
	assert.Equal(t, "没有权限删除该文章", appErr.Message)

	require.NoError(t, svc.Delete(ctx, author, root.ID))
	assert.Equal(t, int64(0), f.count(t, "posts"))
	assert.Equal(t, int64(0), f.count(t, "post_likes"))

	err = svc.Delete(ctx, author, root.ID)
	requireAppError(t, err, myErrors.KindNotFound)
}
