package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/testutils"
)

// TestSchoolAdminService 删除学校时用户目标院校与帖子院校被置空
func TestSchoolAdminService(t *testing.T) {
	f := newFixture(t)
	svc := NewSchoolAdminService(f.schools, f.logger)
	ctx := context.Background()

	number := uint(10003)
	school, err := svc.Create(ctx, &dto.SchoolWriteRequest{Name: strPtr("清华大学"), Number: &number})
	require.NoError(t, err)
	assert.Equal(t, "清华大学", school.Name)

	_, err = svc.Create(ctx, &dto.SchoolWriteRequest{Name: strPtr(" ")})
	appErr := requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, []string{"name: 必须填写", "number: 必须是正整数"}, appErr.Details)

	updated, err := svc.Update(ctx, school.ID, &dto.SchoolWriteRequest{Introduce: strPtr("自强不息")})
	require.NoError(t, err)
	require.NotNil(t, updated.Introduce)
	assert.Equal(t, "自强不息", *updated.Introduce)

	page, err := svc.List(ctx, dto.NameListQuery{Name: "清华"})
	require.NoError(t, err)
	assert.Equal(t, "schools", page.Key)
	assert.Len(t, page.Items, 1)

	user := testutils.CreateTestUser(f.db, testutils.WithTargetSchool(school.ID))
	post := testutils.CreateTestPostInSchool(f.db, user.ID, school.ID)

	require.NoError(t, svc.Delete(ctx, school.ID))

	storedUser, err := f.users.GetByID(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Nil(t, storedUser.TargetSchoolID)
	storedPost, err := f.posts.GetByID(ctx, nil, post.ID)
	require.NoError(t, err)
	assert.Nil(t, storedPost.SchoolID)

	_, err = svc.Get(ctx, school.ID)
	appErr = requireAppError(t, err, myErrors.KindNotFound)
	assert.Equal(t, fmt.Sprintf("ID: %d的学校未找到。", school.ID), appErr.Message)
}

// TestCategoryAdminService 子分类随父分类删除，问答分类置空
func TestCategoryAdminService(t *testing.T) {
	f := newFixture(t)
	svc := NewCategoryAdminService(f.db, f.categories, f.logger)
	ctx := context.Background()

	parent, err := svc.Create(ctx, &dto.CategoryWriteRequest{Name: strPtr("数学")})
	require.NoError(t, err)
	child, err := svc.Create(ctx, &dto.CategoryWriteRequest{Name: strPtr("概率论"), ParentID: &parent.ID})
	require.NoError(t, err)
	assert.Equal(t, &parent.ID, child.ParentID)

	got, err := svc.Get(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, got.Children, 1)
	assert.Equal(t, child.ID, got.Children[0].ID)

	missing := uint64(99999)
	_, err = svc.Create(ctx, &dto.CategoryWriteRequest{Name: strPtr("x"), ParentID: &missing})
	appErr := requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, []string{"parent_id: ID 为 99999 的分类不存在"}, appErr.Details)

	_, err = svc.Update(ctx, parent.ID, &dto.CategoryWriteRequest{ParentID: &parent.ID})
	appErr = requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, []string{"parent_id: 不能把自身设为父级"}, appErr.Details)

	_, err = svc.Update(ctx, parent.ID, &dto.CategoryWriteRequest{ParentID: &child.ID})
	appErr = requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, []string{"parent_id: 不能把自己的下级设为父级"}, appErr.Details)

	renamed, err := svc.Update(ctx, child.ID, &dto.CategoryWriteRequest{Name: strPtr("概率论与数理统计")})
	require.NoError(t, err)
	assert.Equal(t, "概率论与数理统计", renamed.Name)

	user := testutils.CreateTestUser(f.db)
	question := testutils.CreateTestQuestion(f.db, user.ID, &parent.ID)

	require.NoError(t, svc.Delete(ctx, parent.ID))
	assert.Equal(t, int64(0), f.count(t, "categories"))
	stored, err := f.questions.GetByID(ctx, nil, question.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CategoryID)
}

// TestSchoolCategoryAdminService_Upsert 已存在的关联只更新考查频率
func TestSchoolCategoryAdminService_Upsert(t *testing.T) {
	f := newFixture(t)
	svc := NewSchoolCategoryAdminService(f.db, f.links, f.schools, f.categories, f.logger)
	ctx := context.Background()

	school := testutils.CreateTestSchool(f.db, "上海交通大学")
	category := testutils.CreateTestCategory(f.db, "计算机网络", nil)

	row, created, err := svc.Upsert(ctx, &dto.SchoolCategoryWriteRequest{CategoryID: category.ID, SchoolID: school.ID})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 3, row.ExamFrequency)
	require.NotNil(t, row.School)
	require.NotNil(t, row.Category)

	frequency := 5
	again, created, err := svc.Upsert(ctx, &dto.SchoolCategoryWriteRequest{CategoryID: category.ID, SchoolID: school.ID, ExamFrequency: &frequency})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, row.ID, again.ID)
	assert.Equal(t, 5, again.ExamFrequency)
	assert.Equal(t, int64(1), f.count(t, "school_categories"))

	_, _, err = svc.Upsert(ctx, &dto.SchoolCategoryWriteRequest{CategoryID: 99999, SchoolID: school.ID})
	appErr := requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, []string{"category_id: ID 为 99999 的分类不存在"}, appErr.Details)

	page, err := svc.List(ctx, dto.SchoolCategoryListQuery{SchoolID: school.ID})
	require.NoError(t, err)
	assert.Equal(t, "schoolCategories", page.Key)
	assert.Len(t, page.Items, 1)

	other, err := svc.List(ctx, dto.SchoolCategoryListQuery{SchoolID: school.ID + 1})
	require.NoError(t, err)
	assert.Empty(t, other.Items)

	require.NoError(t, svc.Delete(ctx, row.ID))
	_, err = svc.Get(ctx, row.ID)
	requireAppError(t, err, myErrors.KindNotFound)
}
