package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// UserAdminService 后台用户管理。密码写入前统一做 bcrypt。
type UserAdminService interface {
	List(ctx context.Context, q dto.UserListQuery) (*vo.ListPage[*vo.UserVO], error)
	Get(ctx context.Context, id uint64) (*vo.UserVO, error)
	Create(ctx context.Context, req *dto.UserWriteRequest) (*vo.UserVO, error)
	Update(ctx context.Context, id uint64, req *dto.UserWriteRequest) (*vo.UserVO, error)
	Delete(ctx context.Context, id uint64) error
}

type userAdminService struct {
	db         *gorm.DB
	userRepo   mysql.UserRepository
	schoolRepo mysql.SchoolRepository
	logger     *core.ZapLogger
}

func NewUserAdminService(db *gorm.DB, userRepo mysql.UserRepository, schoolRepo mysql.SchoolRepository, logger *core.ZapLogger) UserAdminService {
	return &userAdminService{db: db, userRepo: userRepo, schoolRepo: schoolRepo, logger: logger}
}

func userNotFound(id uint64) string {
	return fmt.Sprintf("ID: %d的用户未找到。", id)
}

// duplicateUser 唯一约束冲突换成可读提示
func duplicateUser(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return myErrors.NewValidation("参数校验失败", "email/username: 邮箱或用户名已被使用")
	}
	return err
}

func (s *userAdminService) List(ctx context.Context, q dto.UserListQuery) (*vo.ListPage[*vo.UserVO], error) {
	page := q.Resolve()
	rows, total, err := s.userRepo.List(ctx, strings.TrimSpace(q.Username), strings.TrimSpace(q.Email), page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	items := make([]*vo.UserVO, 0, len(rows))
	for i := range rows {
		items = append(items, vo.NewUserVO(&rows[i]))
	}
	return &vo.ListPage[*vo.UserVO]{
		Key:        "users",
		Items:      items,
		Pagination: vo.Pagination{Total: total, CurrentPage: page.CurrentPage, PageSize: page.PageSize},
	}, nil
}

func (s *userAdminService) Get(ctx context.Context, id uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetByID(ctx, nil, id, "TargetSchool")
	if err != nil {
		return nil, notFoundAs(err, userNotFound(id))
	}
	return vo.NewUserVO(user), nil
}

func (s *userAdminService) Create(ctx context.Context, req *dto.UserWriteRequest) (*vo.UserVO, error) {
	checks := &fieldChecks{}
	email, username, nickname := trimmed(req.Email), trimmed(req.Username), trimmed(req.Nickname)
	if email == "" {
		checks.fail("email", "必须填写")
	}
	if username == "" {
		checks.fail("username", "必须填写")
	}
	if nickname == "" {
		checks.fail("nickname", "必须填写")
	}
	if req.Password == nil || *req.Password == "" {
		checks.fail("password", "必须填写")
	}
	if err := checks.err(); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(*req.Password)
	if err != nil {
		return nil, myErrors.NewUnexpected("密码加密失败", err)
	}
	user := &entities.User{
		Email:            email,
		Username:         username,
		Password:         hashed,
		Nickname:         nickname,
		Photo:            req.Photo,
		Introduce:        req.Introduce,
		OriginalSchoolID: req.OriginalSchoolID,
		TargetSchoolID:   req.TargetSchoolID,
	}
	if req.Sex != nil {
		user.Sex = *req.Sex
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checks.reference(ctx, tx, "target_school_id", "学校", req.TargetSchoolID, s.schoolRepo.Exists); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, duplicateUser(err)
	}
	s.logger.Info("后台创建用户", zap.Uint64("userID", user.ID), zap.Int("role", int(user.Role)))
	return s.Get(ctx, user.ID)
}

func (s *userAdminService) Update(ctx context.Context, id uint64, req *dto.UserWriteRequest) (*vo.UserVO, error) {
	checks := &fieldChecks{}
	fields := map[string]any{}
	texts := []struct {
		column string
		value  *string
	}{{"email", req.Email}, {"username", req.Username}, {"nickname", req.Nickname}}
	for _, t := range texts {
		if t.value == nil {
			continue
		}
		if v := strings.TrimSpace(*t.value); v == "" {
			checks.fail(t.column, "不能为空")
		} else {
			fields[t.column] = v
		}
	}
	if req.Password != nil {
		if *req.Password == "" {
			checks.fail("password", "不能为空")
		} else {
			hashed, err := auth.HashPassword(*req.Password)
			if err != nil {
				return nil, myErrors.NewUnexpected("密码加密失败", err)
			}
			fields["password"] = hashed
		}
	}
	if req.Sex != nil {
		fields["sex"] = *req.Sex
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Photo != nil {
		fields["photo"] = *req.Photo
	}
	if req.Introduce != nil {
		fields["introduce"] = *req.Introduce
	}
	if req.OriginalSchoolID != nil {
		fields["original_school_id"] = *req.OriginalSchoolID
	}
	if req.TargetSchoolID != nil {
		fields["target_school_id"] = *req.TargetSchoolID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.userRepo.Exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return myErrors.NewNotFound(userNotFound(id))
		}
		if err := checks.reference(ctx, tx, "target_school_id", "学校", req.TargetSchoolID, s.schoolRepo.Exists); err != nil {
			return err
		}
		if err := checks.err(); err != nil {
			return err
		}
		return s.userRepo.Updates(ctx, tx, id, fields)
	})
	if err != nil {
		return nil, duplicateUser(err)
	}
	return s.Get(ctx, id)
}

// Delete 先回退该用户贡献的点赞/收藏计数，再删除用户
func (s *userAdminService) Delete(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.ReleaseReactions(ctx, tx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return notFoundAs(err, userNotFound(id))
	}
	s.logger.Info("后台删除用户", zap.Uint64("userID", id))
	return nil
}
