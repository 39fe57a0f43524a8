package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/testutils"
)

func (f *fixture) categoryService() CategoryService {
	return NewCategoryService(f.categories, f.users, f.questions, f.logger)
}

// TestCategoryService_SchoolTree 两层分类都只保留与目标院校关联的
func TestCategoryService_SchoolTree(t *testing.T) {
	f := newFixture(t)
	svc := f.categoryService()
	ctx := context.Background()

	school := testutils.CreateTestSchool(f.db, "浙江大学")
	otherSchool := testutils.CreateTestSchool(f.db, "复旦大学")

	math := testutils.CreateTestCategory(f.db, "数学", nil)
	calculus := testutils.CreateTestCategory(f.db, "高等数学", &math.ID)
	algebra := testutils.CreateTestCategory(f.db, "线性代数", &math.ID)
	english := testutils.CreateTestCategory(f.db, "英语", nil)
	politics := testutils.CreateTestCategory(f.db, "政治", nil)

	testutils.LinkSchoolCategory(f.db, math.ID, school.ID)
	testutils.LinkSchoolCategory(f.db, calculus.ID, school.ID)
	testutils.LinkSchoolCategory(f.db, algebra.ID, otherSchool.ID)
	testutils.LinkSchoolCategory(f.db, english.ID, school.ID)
	testutils.LinkSchoolCategory(f.db, politics.ID, otherSchool.ID)

	user := testutils.CreateTestUser(f.db, testutils.WithTargetSchool(school.ID))

	tree, err := svc.SchoolTree(ctx, user)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, math.ID, tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, calculus.ID, tree[0].Children[0].ID)

	assert.Equal(t, english.ID, tree[1].ID)
	assert.NotNil(t, tree[1].Children)
	assert.Empty(t, tree[1].Children)
}

// TestCategoryService_SchoolTreeErrors 未设置目标院校与用户不存在
func TestCategoryService_SchoolTreeErrors(t *testing.T) {
	f := newFixture(t)
	svc := f.categoryService()
	ctx := context.Background()

	noTarget := testutils.CreateTestUser(f.db)
	_, err := svc.SchoolTree(ctx, noTarget)
	appErr := requireAppError(t, err, myErrors.KindNotFound)
	assert.Equal(t, "用户未设置目标学校。", appErr.Message)

	ghost := testutils.CreateTestUser(f.db)
	require.NoError(t, f.db.Exec("DELETE FROM users WHERE id = ?", ghost.ID).Error)
	_, err = svc.SchoolTree(ctx, ghost)
	appErr = requireAppError(t, err, myErrors.KindNotFound)
	assert.Equal(t, "用户不存在。", appErr.Message)

	_, err = svc.SchoolTree(ctx, nil)
	requireAppError(t, err, myErrors.KindUnauthorized)
}

// TestCategoryService_QuestionsUnder 包含分类本身与直接子分类的题目，不含孙分类
func TestCategoryService_QuestionsUnder(t *testing.T) {
	f := newFixture(t)
	svc := f.categoryService()
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	root := testutils.CreateTestCategory(f.db, "计算机", nil)
	child := testutils.CreateTestCategory(f.db, "操作系统", &root.ID)
	grandchild := testutils.CreateTestCategory(f.db, "进程调度", &child.ID)
	other := testutils.CreateTestCategory(f.db, "数学", nil)

	q1 := testutils.CreateTestQuestion(f.db, user.ID, &root.ID, testutils.WithTitle("什么是计算机"))
	q2 := testutils.CreateTestQuestion(f.db, user.ID, &child.ID, testutils.WithContent("死锁的四个条件"))
	testutils.CreateTestQuestion(f.db, user.ID, &grandchild.ID)
	testutils.CreateTestQuestion(f.db, user.ID, &other.ID)
	testutils.CreateTestQuestion(f.db, user.ID, nil)

	questions, err := svc.QuestionsUnder(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, q2.ID, questions[0].ID)
	assert.Equal(t, "死锁的四个条件", questions[0].Content)
	assert.Equal(t, q1.ID, questions[1].ID)
	assert.Equal(t, "什么是计算机", questions[1].Title)

	empty, err := svc.QuestionsUnder(ctx, grandchild.ID+100)
	appErr := requireAppError(t, err, myErrors.KindNotFound)
	assert.Equal(t, "分类未找到", appErr.Message)
	assert.Nil(t, empty)
}
