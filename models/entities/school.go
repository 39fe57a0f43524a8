package entities

// School 院校
type School struct {
	Model

	Name      string  `gorm:"type:varchar(100);not null"`
	Number    uint    `gorm:"not null"`
	Introduce *string `gorm:"type:text"`
}

// Category 分类，parent_id 为空表示顶级分类。
// - 约定只有两级（顶级 + 直接子级），表结构本身不限制深度。
// - 删除父分类时子分类级联删除。
type Category struct {
	Model

	Name     string  `gorm:"type:varchar(100);not null"`
	ParentID *uint64 `gorm:"index"`

	Children []Category `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// SchoolCategory 分类与院校的关联，以及该分类在该院校的考查频率 (1-5)。
type SchoolCategory struct {
	Model

	CategoryID    uint64 `gorm:"not null;uniqueIndex:idx_school_category_pair,priority:1"`
	SchoolID      uint64 `gorm:"not null;uniqueIndex:idx_school_category_pair,priority:2;index"`
	ExamFrequency int    `gorm:"type:tinyint;not null;default:3"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	School   *School   `gorm:"foreignKey:SchoolID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
