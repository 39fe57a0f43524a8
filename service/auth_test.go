package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/redis"
	"github.com/Xushengqwer/forum_service/testutils"
)

func (f *fixture) authService(t *testing.T, sessions redis.SessionRepository) AuthService {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthService(f.db, f.users, f.schools, tokens, sessions, f.logger)
}

// TestAuthService_SignUp 注册后密码被哈希，重复邮箱返回校验错误
func TestAuthService_SignUp(t *testing.T) {
	f := newFixture(t)
	svc := f.authService(t, nil)
	ctx := context.Background()

	school := testutils.CreateTestSchool(f.db, "武汉大学")
	req := &dto.SignUpRequest{
		Email:          "alice@example.com",
		Username:       "alice",
		Password:       "secret123",
		Nickname:       "爱丽丝",
		TargetSchoolID: &school.ID,
	}

	user, err := svc.SignUp(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, enums.RoleNormal, user.Role)

	stored, err := f.users.GetByID(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))

	_, err = svc.SignUp(ctx, req)
	appErr := requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, "注册失败", appErr.Message)

	missing := uint64(99999)
	_, err = svc.SignUp(ctx, &dto.SignUpRequest{Email: "bob@example.com", Username: "bob", Password: "secret123", Nickname: "bob", TargetSchoolID: &missing})
	appErr = requireAppError(t, err, myErrors.KindValidation)
	assert.Equal(t, []string{"target_school_id: ID 为 99999 的学校不存在"}, appErr.Details)
}

// TestAuthService_SignIn 测试前台与后台登录的各种失败分支
func TestAuthService_SignIn(t *testing.T) {
	f := newFixture(t)
	svc := f.authService(t, nil)
	ctx := context.Background()

	normal := testutils.CreateTestUser(f.db, testutils.WithUsername("normal_user"), testutils.WithEmail("normal@example.com"))
	testutils.CreateTestUser(f.db, testutils.WithUsername("admin_user"), testutils.WithRole(enums.RoleAdmin))
	testutils.CreateTestUser(f.db, testutils.WithUsername("banned_user"), testutils.WithRole(enums.RoleBanned))

	tests := []struct {
		name      string
		login     string
		password  string
		adminOnly bool
		kind      myErrors.Kind
		message   string
		wantErr   bool
	}{
		{name: "by username", login: "normal_user", password: testutils.TestPassword},
		{name: "by email", login: "normal@example.com", password: testutils.TestPassword},
		{name: "admin backend", login: "admin_user", password: testutils.TestPassword, adminOnly: true},
		{name: "empty login", login: " ", password: "x", wantErr: true, kind: myErrors.KindBadRequest, message: "邮箱/用户名必须填写。"},
		{name: "empty password", login: "normal_user", wantErr: true, kind: myErrors.KindBadRequest, message: "密码必须填写"},
		{name: "unknown user", login: "nobody", password: "x", wantErr: true, kind: myErrors.KindNotFound, message: "用户不存在，无法登陆"},
		{name: "wrong password", login: "normal_user", password: "wrong", wantErr: true, kind: myErrors.KindUnauthorized, message: "密码错误。"},
		{name: "normal user on admin backend", login: "normal_user", password: testutils.TestPassword, adminOnly: true, wantErr: true, kind: myErrors.KindUnauthorized, message: "您没有权限登陆管理员后台。"},
		{name: "banned user", login: "banned_user", password: testutils.TestPassword, wantErr: true, kind: myErrors.KindUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.SignIn(ctx, &dto.SignInRequest{Login: tt.login, Password: tt.password}, tt.adminOnly)
			if tt.wantErr {
				appErr := requireAppError(t, err, tt.kind)
				if tt.message != "" {
					assert.Equal(t, tt.message, appErr.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token.Token)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		})
	}

	stored, err := f.users.GetByID(ctx, nil, normal.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

// TestAuthService_ResolveToken 无会话存储时只校验签名
func TestAuthService_ResolveToken(t *testing.T) {
	f := newFixture(t)
	svc := f.authService(t, nil)
	ctx := context.Background()

	school := testutils.CreateTestSchool(f.db, "中山大学")
	user := testutils.CreateTestUser(f.db, testutils.WithTargetSchool(school.ID))
	token, err := svc.SignIn(ctx, &dto.SignInRequest{Login: user.Username, Password: testutils.TestPassword}, false)
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	require.NotNil(t, resolved.TargetSchool)
	assert.Equal(t, "中山大学", resolved.TargetSchool.Name)

	_, err = svc.ResolveToken(ctx, "not-a-token")
	appErr := requireAppError(t, err, myErrors.KindUnauthorized)
	assert.Equal(t, "当前user接口需要认证才能访问。", appErr.Message)

	// 退出登录在无会话存储时不使令牌失效
	require.NoError(t, svc.SignOut(ctx, resolved))
	_, err = svc.ResolveToken(ctx, token.Token)
	require.NoError(t, err)

	require.NoError(t, f.db.Exec("DELETE FROM users WHERE id = ?", user.ID).Error)
	_, err = svc.ResolveToken(ctx, token.Token)
	appErr = requireAppError(t, err, myErrors.KindUnauthorized)
	assert.Equal(t, "用户不存在。", appErr.Message)
}

// TestAuthService_Sessions 退出登录后令牌失效
func TestAuthService_Sessions(t *testing.T) {
	f := newFixture(t)
	sessions := newMemorySessions()
	svc := f.authService(t, sessions)
	ctx := context.Background()

	user := testutils.CreateTestUser(f.db)
	token, err := svc.SignIn(ctx, &dto.SignInRequest{Login: user.Username, Password: testutils.TestPassword}, false)
	require.NoError(t, err)

	saved, err := sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, token.Token, saved)

	resolved, err := svc.ResolveToken(ctx, token.Token)
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, resolved))
	_, err = svc.ResolveToken(ctx, token.Token)
	appErr := requireAppError(t, err, myErrors.KindUnauthorized)
	assert.Equal(t, "登录状态已失效，请重新登录。", appErr.Message)

	err = svc.SignOut(ctx, nil)
	requireAppError(t, err, myErrors.KindUnauthorized)
}
