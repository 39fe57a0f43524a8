package entities

import "github.com/Xushengqwer/forum_service/models/enums"

// ContentBase 是帖子与问答共有的字段，两张表结构平行。
// - parent_id 为空表示根内容，非空表示对同类内容的回复
// - 三个计数器是冗余字段，点赞/收藏计数以关联表行数为准，在切换事务内增量维护
type ContentBase struct {
	Model

	Title      string  `gorm:"type:varchar(255);not null"`
	Content    string  `gorm:"type:longtext;not null"`
	UserID     uint64  `gorm:"not null;index"`
	ParentID   *uint64 `gorm:"index"`
	Video      *string `gorm:"type:varchar(255)"`
	CoverImage *string `gorm:"type:varchar(255)"`

	Type enums.ContentType `gorm:"type:tinyint;not null;default:1;index"`

	LikesCount    uint64 `gorm:"not null;default:0"`
	ViewsCount    uint64 `gorm:"not null;default:0"`
	FavoriteCount uint64 `gorm:"not null;default:0"`

	IsRecommended bool                `gorm:"not null;default:false"`
	Status        enums.ContentStatus `gorm:"type:varchar(16);not null;default:published;index"`
}

// ContentKind 描述一种内容类型在存储层的静态信息，泛型仓库与服务据此拼装查询。
type ContentKind struct {
	Name       string // post / question
	Plural     string // 表名，同时作为列表响应中的 JSON 键
	Label      string // 前台展示名: 文章 / 题目
	AdminLabel string // 后台展示名: 帖子 / 问题

	// MissingLabel 点赞/收藏时内容不存在的提示主语: 帖子 / 题目
	MissingLabel string
	// IDField 前台点赞/收藏请求体中的内容 id 字段: postId / questionId
	IDField string

	ClassificationColumn      string // school_id / category_id
	ClassificationAssociation string // GORM 关联名: School / Category
	ClassificationTable       string
	ClassificationLabel       string // 学校 / 分类

	ReactionColumn string // 关联表中指向本内容的列: post_id / question_id
	LikeTable      string
	FavoriteTable  string
}

// ContentRecord 由 *Post 与 *Question 实现。
type ContentRecord interface {
	Base() *ContentBase
	Kind() ContentKind
	ClassificationID() *uint64
	SetClassificationID(id *uint64)
	// ClassificationRef 返回已预加载的分类（院校或分类）的 id 与名称
	ClassificationRef() (id uint64, name string, ok bool)
	Difficulty() *int
	SetDifficulty(d *int)
	Owner() *User
	ChildRecords() []ContentRecord
}

// ContentPtr 约束泛型参数 PT 为 *T 且实现 ContentRecord。
type ContentPtr[T any] interface {
	*T
	ContentRecord
}

// KindOf 返回内容类型 T 的描述信息。
func KindOf[T any, PT ContentPtr[T]]() ContentKind {
	var zero T
	return PT(&zero).Kind()
}
