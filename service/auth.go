package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/repo/redis"
)

// AuthService 注册、登录与令牌解析。
// sessions 为 nil 时令牌只做签名与有效期校验，退出登录不会使令牌失效。
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*vo.UserVO, error)

	// SignIn adminOnly 为 true 时要求管理员角色
	SignIn(ctx context.Context, req *dto.SignInRequest, adminOnly bool) (*vo.TokenVO, error)

	SignOut(ctx context.Context, actor *entities.User) error

	// ResolveToken 令牌 -> 用户，供认证中间件使用
	ResolveToken(ctx context.Context, token string) (*entities.User, error)
}

type authService struct {
	db         *gorm.DB
	userRepo   mysql.UserRepository
	schoolRepo mysql.SchoolRepository
	tokens     *auth.TokenManager
	sessions   redis.SessionRepository
	logger     *core.ZapLogger
	now        func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	userRepo mysql.UserRepository,
	schoolRepo mysql.SchoolRepository,
	tokens *auth.TokenManager,
	sessions redis.SessionRepository,
	logger *core.ZapLogger,
) AuthService {
	return &authService{
		db:         db,
		userRepo:   userRepo,
		schoolRepo: schoolRepo,
		tokens:     tokens,
		sessions:   sessions,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*vo.UserVO, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, myErrors.NewUnexpected("密码加密失败", err)
	}
	user := &entities.User{
		Email:            strings.TrimSpace(req.Email),
		Username:         strings.TrimSpace(req.Username),
		Password:         hashed,
		Nickname:         strings.TrimSpace(req.Nickname),
		Sex:              req.Sex,
		Role:             enums.RoleNormal,
		OriginalSchoolID: req.OriginalSchoolID,
		TargetSchoolID:   req.TargetSchoolID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checks := &fieldChecks{}
		if err := checks.reference(ctx, tx, "target_school_id", "学校", req.TargetSchoolID, s.schoolRepo.Exists); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, myErrors.NewValidation("注册失败", "邮箱或用户名已被使用")
		}
		return nil, err
	}

	s.logger.Info("新用户注册", zap.Uint64("userID", user.ID), zap.String("username", user.Username))
	return vo.NewUserVO(user), nil
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest, adminOnly bool) (*vo.TokenVO, error) {
	login := strings.TrimSpace(req.Login)
	if login == "" {
		return nil, myErrors.NewBadRequest("邮箱/用户名必须填写。")
	}
	if req.Password == "" {
		return nil, myErrors.NewBadRequest("密码必须填写")
	}

	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		return nil, notFoundAs(err, "用户不存在，无法登陆")
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, myErrors.NewUnauthorized("密码错误。")
	}
	if adminOnly && !user.IsAdmin() {
		return nil, myErrors.NewUnauthorized("您没有权限登陆管理员后台。")
	}
	if err := auth.Authorize(user, enums.RoleNormal); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, myErrors.NewUnexpected("签发令牌失败", err)
	}
	if s.sessions != nil {
		if err := s.sessions.Save(ctx, user.ID, token, s.tokens.TTL()); err != nil {
			return nil, myErrors.NewUnexpected("保存登录状态失败", err)
		}
	}
	// 最后登录时间写失败不影响登录
	_ = s.userRepo.TouchLastLogin(ctx, user.ID, s.now())

	s.logger.Info("用户登录", zap.Uint64("userID", user.ID), zap.Bool("admin", adminOnly))
	return &vo.TokenVO{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) SignOut(ctx context.Context, actor *entities.User) error {
	if actor == nil {
		return myErrors.NewUnauthorized("未登录")
	}
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, actor.ID)
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, myErrors.NewUnauthorized("登录已过期，请重新登录。")
		}
		return nil, myErrors.NewUnauthorized("当前user接口需要认证才能访问。")
	}

	if s.sessions != nil {
		current, err := s.sessions.Get(ctx, claims.UserID)
		if err != nil && !errors.Is(err, redis.ErrSessionMissing) {
			return nil, myErrors.NewUnexpected("读取登录状态失败", err)
		}
		if current != token {
			return nil, myErrors.NewUnauthorized("登录状态已失效，请重新登录。")
		}
	}

	user, err := s.userRepo.GetByID(ctx, nil, claims.UserID, "TargetSchool")
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.NewUnauthorized("用户不存在。")
		}
		return nil, err
	}
	return user, nil
}
