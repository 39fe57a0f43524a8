package entities

// ReactionKind 描述一种点赞/收藏关联表，以及它维护的内容计数列。
type ReactionKind struct {
	Name  string // post_like 等，用于日志与事件
	Label string // PostLike 等，用于后台提示
	Table string

	ContentTable       string
	ContentColumn      string
	ContentAssociation string // GORM 关联名: Post / Question
	CounterColumn      string // likes_count / favorite_count

	AddedMessage   string
	RemovedMessage string
}

// ReactionRecord 由四种关联行实现，(content_id, user_id) 组合唯一。
type ReactionRecord interface {
	RecordID() uint64
	Meta() *Model
	Pair() (contentID, userID uint64)
	SetPair(contentID, userID uint64)
	Kind() ReactionKind
	ContentRecord() (ContentRecord, bool)
	Reactor() *User
}

type ReactionPtr[R any] interface {
	*R
	ReactionRecord
}

func ReactionKindOf[R any, PR ReactionPtr[R]]() ReactionKind {
	var zero R
	return PR(&zero).Kind()
}

// PostLike 帖子点赞
type PostLike struct {
	Model
	PostID uint64 `gorm:"not null;uniqueIndex:idx_post_like_pair,priority:1"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_post_like_pair,priority:2;index"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// PostFavorite 帖子收藏
type PostFavorite struct {
	Model
	PostID uint64 `gorm:"not null;uniqueIndex:idx_post_favorite_pair,priority:1"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_post_favorite_pair,priority:2;index"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// QuestionLike 问答点赞
type QuestionLike struct {
	Model
	QuestionID uint64 `gorm:"not null;uniqueIndex:idx_question_like_pair,priority:1"`
	UserID     uint64 `gorm:"not null;uniqueIndex:idx_question_like_pair,priority:2;index"`

	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// QuestionFavorite 问答收藏
type QuestionFavorite struct {
	Model
	QuestionID uint64 `gorm:"not null;uniqueIndex:idx_question_favorite_pair,priority:1"`
	UserID     uint64 `gorm:"not null;uniqueIndex:idx_question_favorite_pair,priority:2;index"`

	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

var (
	PostLikeKind = ReactionKind{
		Name: "post_like", Label: "PostLike", Table: "post_likes",
		ContentTable: "posts", ContentColumn: "post_id", ContentAssociation: "Post",
		CounterColumn: "likes_count", AddedMessage: "点赞成功。", RemovedMessage: "取消赞成功。",
	}
	PostFavoriteKind = ReactionKind{
		Name: "post_favorite", Label: "PostFavorite", Table: "post_favorites",
		ContentTable: "posts", ContentColumn: "post_id", ContentAssociation: "Post",
		CounterColumn: "favorite_count", AddedMessage: "收藏成功。", RemovedMessage: "取消收藏成功。",
	}
	QuestionLikeKind = ReactionKind{
		Name: "question_like", Label: "QuestionLike", Table: "question_likes",
		ContentTable: "questions", ContentColumn: "question_id", ContentAssociation: "Question",
		CounterColumn: "likes_count", AddedMessage: "点赞成功。", RemovedMessage: "取消赞成功。",
	}
	QuestionFavoriteKind = ReactionKind{
		Name: "question_favorite", Label: "QuestionFavorite", Table: "question_favorites",
		ContentTable: "questions", ContentColumn: "question_id", ContentAssociation: "Question",
		CounterColumn: "favorite_count", AddedMessage: "收藏成功。", RemovedMessage: "取消收藏成功。",
	}
)

func (r *PostLike) RecordID() uint64 { return r.ID }
func (r *PostLike) Meta() *Model { return &r.Model }
func (r *PostLike) Pair() (uint64, uint64) { return r.PostID, r.UserID }
func (r *PostLike) SetPair(contentID, userID uint64) { r.PostID, r.UserID = contentID, userID }
func (r *PostLike) Kind() ReactionKind { return PostLikeKind }
func (r *PostLike) Reactor() *User { return r.User }
func (r *PostLike) ContentRecord() (ContentRecord, bool) {
	if r.Post == nil {
		return nil, false
	}
	return r.Post, true
}

func (r *PostFavorite) RecordID() uint64 { return r.ID }
func (r *PostFavorite) Meta() *Model { return &r.Model }
func (r *PostFavorite) Pair() (uint64, uint64) { return r.PostID, r.UserID }
func (r *PostFavorite) SetPair(contentID, userID uint64) { r.PostID, r.UserID = contentID, userID }
func (r *PostFavorite) Kind() ReactionKind { return PostFavoriteKind }
func (r *PostFavorite) Reactor() *User { return r.User }
func (r *PostFavorite) ContentRecord() (ContentRecord, bool) {
	if r.Post == nil {
		return nil, false
	}
	return r.Post, true
}

func (r *QuestionLike) RecordID() uint64 { return r.ID }
func (r *QuestionLike) Meta() *Model { return &r.Model }
func (r *QuestionLike) Pair() (uint64, uint64) { return r.QuestionID, r.UserID }
func (r *QuestionLike) SetPair(contentID, userID uint64) { r.QuestionID, r.UserID = contentID, userID }
func (r *QuestionLike) Kind() ReactionKind { return QuestionLikeKind }
func (r *QuestionLike) Reactor() *User { return r.User }
func (r *QuestionLike) ContentRecord() (ContentRecord, bool) {
	if r.Question == nil {
		return nil, false
	}
	return r.Question, true
}

func (r *QuestionFavorite) RecordID() uint64 { return r.ID }
func (r *QuestionFavorite) Meta() *Model { return &r.Model }
func (r *QuestionFavorite) Pair() (uint64, uint64) { return r.QuestionID, r.UserID }
func (r *QuestionFavorite) SetPair(contentID, userID uint64) { r.QuestionID, r.UserID = contentID, userID }
func (r *QuestionFavorite) Kind() ReactionKind { return QuestionFavoriteKind }
func (r *QuestionFavorite) Reactor() *User { return r.User }
func (r *QuestionFavorite) ContentRecord() (ContentRecord, bool) {
	if r.Question == nil {
		return nil, false
	}
	return r.Question, true
}

// ReactionKinds 全部四种点赞/收藏
var ReactionKinds = []ReactionKind{PostLikeKind, PostFavoriteKind, QuestionLikeKind, QuestionFavoriteKind}

// All 返回需要迁移的全部实体，按依赖顺序排列。
func All() []any {
	return []any{
		&School{},
		&User{},
		&Category{},
		&SchoolCategory{},
		&Post{},
		&Question{},
		&PostLike{},
		&PostFavorite{},
		&QuestionLike{},
		&QuestionFavorite{},
	}
}
