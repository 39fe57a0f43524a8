package entities

// Post 帖子
// - school_id 指向院校，院校删除时置空
// - user_id 删除用户时级联删除其帖子
// - parent_id 删除父帖时级联删除全部回复
type Post struct {
	ContentBase

	SchoolID *uint64 `gorm:"index"`

	User     *User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	School   *School `gorm:"foreignKey:SchoolID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Children []Post  `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

var PostKind = ContentKind{
	Name:                      "post",
	Plural:                    "posts",
	Label:                     "文章",
	AdminLabel:                "帖子",
	MissingLabel:              "帖子",
	IDField:                   "postId",
	ClassificationColumn:      "school_id",
	ClassificationAssociation: "School",
	ClassificationTable:       "schools",
	ClassificationLabel:       "学校",
	ReactionColumn:            "post_id",
	LikeTable:                 "post_likes",
	FavoriteTable:             "post_favorites",
}

func (p *Post) Base() *ContentBase { return &p.ContentBase }

func (p *Post) Kind() ContentKind { return PostKind }

func (p *Post) ClassificationID() *uint64 { return p.SchoolID }

func (p *Post) SetClassificationID(id *uint64) { p.SchoolID = id }

func (p *Post) ClassificationRef() (uint64, string, bool) {
	if p.School == nil {
		return 0, "", false
	}
	return p.School.ID, p.School.Name, true
}

// 帖子没有难度字段
func (p *Post) Difficulty() *int { return nil }

func (p *Post) SetDifficulty(*int) {}

func (p *Post) Owner() *User { return p.User }

func (p *Post) ChildRecords() []ContentRecord {
	out := make([]ContentRecord, 0, len(p.Children))
	for i := range p.Children {
		out = append(out, &p.Children[i])
	}
	return out
}
