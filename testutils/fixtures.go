package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
)

// TestPassword 夹具用户的明文密码
const TestPassword = "password123"

var (
	hashOnce   sync.Once
	hashedTest string
)

// TestPasswordHash TestPassword 的 bcrypt 哈希，只计算一次
func TestPasswordHash() string {
	hashOnce.Do(func() {
		h, err := auth.HashPassword(TestPassword)
		if err != nil {
			panic(fmt.Sprintf("Failed to hash test password: %v", err))
		}
		hashedTest = h
	})
	return hashedTest
}

// CreateTestUser 用户名与邮箱唯一
func CreateTestUser(db *gorm.DB, opts ...UserOption) *entities.User {
	uniqueID := uuid.NewString()[:8]
	u := &entities.User{
		Email:    fmt.Sprintf("test_%s@example.com", uniqueID),
		Username: fmt.Sprintf("user_%s", uniqueID),
		Password: TestPasswordHash(),
		Nickname: fmt.Sprintf("nick_%s", uniqueID),
		Role:     enums.RoleNormal,
	}
	for _, opt := range opts {
		opt(u)
	}
	if err := db.Create(u).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}
	return u
}

type UserOption func(*entities.User)

func WithRole(role enums.Role) UserOption {
	return func(u *entities.User) { u.Role = role }
}

func WithTargetSchool(schoolID uint64) UserOption {
	return func(u *entities.User) { u.TargetSchoolID = &schoolID }
}

func WithUsername(username string) UserOption {
	return func(u *entities.User) { u.Username = username }
}

func WithEmail(email string) UserOption {
	return func(u *entities.User) { u.Email = email }
}

func WithPasswordHash(hash string) UserOption {
	return func(u *entities.User) { u.Password = hash }
}

// CreateTestSchool 院校
func CreateTestSchool(db *gorm.DB, name string) *entities.School {
	s := &entities.School{Name: name, Number: 10000}
	if err := db.Create(s).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test school: %v", err))
	}
	return s
}

// CreateTestCategory parentID 为 nil 时创建顶级分类
func CreateTestCategory(db *gorm.DB, name string, parentID *uint64) *entities.Category {
	c := &entities.Category{Name: name, ParentID: parentID}
	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}
	return c
}

// LinkSchoolCategory 建立分类与院校的关联
func LinkSchoolCategory(db *gorm.DB, categoryID, schoolID uint64) *entities.SchoolCategory {
	sc := &entities.SchoolCategory{CategoryID: categoryID, SchoolID: schoolID, ExamFrequency: 3}
	if err := db.Create(sc).Error; err != nil {
		panic(fmt.Sprintf("Failed to link school category: %v", err))
	}
	return sc
}

// CreateTestPost 默认是已发布的根帖子
func CreateTestPost(db *gorm.DB, userID uint64, opts ...ContentOption) *entities.Post {
	p := &entities.Post{ContentBase: defaultContent(userID)}
	for _, opt := range opts {
		opt(&p.ContentBase)
	}
	if err := db.Create(p).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test post: %v", err))
	}
	return p
}

// CreateTestQuestion categoryID 可为 nil
func CreateTestQuestion(db *gorm.DB, userID uint64, categoryID *uint64, opts ...ContentOption) *entities.Question {
	q := &entities.Question{ContentBase: defaultContent(userID), CategoryID: categoryID}
	for _, opt := range opts {
		opt(&q.ContentBase)
	}
	if err := db.Create(q).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test question: %v", err))
	}
	return q
}

// CreateTestPostInSchool 带院校的帖子
func CreateTestPostInSchool(db *gorm.DB, userID, schoolID uint64, opts ...ContentOption) *entities.Post {
	p := &entities.Post{ContentBase: defaultContent(userID), SchoolID: &schoolID}
	for _, opt := range opts {
		opt(&p.ContentBase)
	}
	if err := db.Create(p).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test post: %v", err))
	}
	return p
}

func defaultContent(userID uint64) entities.ContentBase {
	uniqueID := uuid.NewString()[:8]
	return entities.ContentBase{
		Title:   "title " + uniqueID,
		Content: "content " + uniqueID,
		UserID:  userID,
		Type:    enums.TypeExperience,
		Status:  enums.StatusPublished,
	}
}

type ContentOption func(*entities.ContentBase)

func WithParent(parentID uint64) ContentOption {
	return func(c *entities.ContentBase) { c.ParentID = &parentID }
}

func WithTitle(title string) ContentOption {
	return func(c *entities.ContentBase) { c.Title = title }
}

func WithContent(content string) ContentOption {
	return func(c *entities.ContentBase) { c.Content = content }
}

func WithType(t enums.ContentType) ContentOption {
	return func(c *entities.ContentBase) { c.Type = t }
}

func WithStatus(status enums.ContentStatus) ContentOption {
	return func(c *entities.ContentBase) { c.Status = status }
}

func WithRecommended(likes uint64) ContentOption {
	return func(c *entities.ContentBase) {
		c.IsRecommended = true
		c.LikesCount = likes
	}
}

func WithLikes(likes uint64) ContentOption {
	return func(c *entities.ContentBase) { c.LikesCount = likes }
}
