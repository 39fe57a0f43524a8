package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/myErrors"
)

// ExistsFunc 在给定连接（可为事务）上检查某个 id 是否存在
type ExistsFunc func(ctx context.Context, db *gorm.DB, id uint64) (bool, error)

// fieldChecks 收集写入前的逐字段问题，全部检查完再一次性返回。
type fieldChecks struct {
	details []string
}

func (f *fieldChecks) fail(field, format string, args ...any) {
	f.details = append(f.details, field+": "+fmt.Sprintf(format, args...))
}

// reference id 非空时要求记录存在
func (f *fieldChecks) reference(ctx context.Context, db *gorm.DB, field, label string, id *uint64, exists ExistsFunc) error {
	if id == nil {
		return nil
	}
	ok, err := exists(ctx, db, *id)
	if err != nil {
		return err
	}
	if !ok {
		f.fail(field, "ID 为 %d 的%s不存在", *id, label)
	}
	return nil
}

// ParentOfFunc 读取某行的 parent_id，行不存在时返回 commonerrors.ErrRepoNotFound
type ParentOfFunc func(ctx context.Context, db *gorm.DB, id uint64) (*uint64, error)

// acyclic 从新父级沿祖先链向上查找 id，找到说明新父级是它的后代，写入后会成环。
// parentID 等于 id 的情况由调用方单独报错。
func (f *fieldChecks) acyclic(ctx context.Context, db *gorm.DB, field string, id uint64, parentID *uint64, parentOf ParentOfFunc) error {
	if parentID == nil || *parentID == id {
		return nil
	}
	seen := map[uint64]bool{}
	for cur := parentID; cur != nil; {
		if *cur == id {
			f.fail(field, "不能把自己的下级设为父级")
			return nil
		}
		if seen[*cur] {
			return nil
		}
		seen[*cur] = true
		next, err := parentOf(ctx, db, *cur)
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}

func (f *fieldChecks) err() error {
	if len(f.details) == 0 {
		return nil
	}
	return myErrors.NewValidation("参数校验失败", f.details...)
}

// notFoundAs 把仓库层的未找到替换为带业务提示的 NotFound，其它错误原样返回
func notFoundAs(err error, message string) error {
	if errors.Is(err, commonerrors.ErrRepoNotFound) {
		return myErrors.NewNotFound(message)
	}
	return err
}

func uint64Ptr(v uint64) *uint64 { return &v }
