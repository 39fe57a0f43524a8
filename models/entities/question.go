package entities

// Question 问答，与 Post 结构平行，分类改为 category_id，并多一个可空的难度。
type Question struct {
	ContentBase

	CategoryID *uint64 `gorm:"index"`
	Level      *int    `gorm:"column:difficulty"`

	User     *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Category *Category  `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Children []Question `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

var QuestionKind = ContentKind{
	Name:                      "question",
	Plural:                    "questions",
	Label:                     "题目",
	AdminLabel:                "问题",
	MissingLabel:              "题目",
	IDField:                   "questionId",
	ClassificationColumn:      "category_id",
	ClassificationAssociation: "Category",
	ClassificationTable:       "categories",
	ClassificationLabel:       "分类",
	ReactionColumn:            "question_id",
	LikeTable:                 "question_likes",
	FavoriteTable:             "question_favorites",
}

func (q *Question) Base() *ContentBase { return &q.ContentBase }

func (q *Question) Kind() ContentKind { return QuestionKind }

func (q *Question) ClassificationID() *uint64 { return q.CategoryID }

func (q *Question) SetClassificationID(id *uint64) { q.CategoryID = id }

func (q *Question) ClassificationRef() (uint64, string, bool) {
	if q.Category == nil {
		return 0, "", false
	}
	return q.Category.ID, q.Category.Name, true
}

func (q *Question) Difficulty() *int { return q.Level }

func (q *Question) SetDifficulty(d *int) { q.Level = d }

func (q *Question) Owner() *User { return q.User }

func (q *Question) ChildRecords() []ContentRecord {
	out := make([]ContentRecord, 0, len(q.Children))
	for i := range q.Children {
		out = append(out, &q.Children[i])
	}
	return out
}
