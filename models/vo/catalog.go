package vo

import (
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
)

type SchoolVO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Number    uint      `json:"number"`
	Introduce *string   `json:"introduce"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSchoolVO(s *entities.School) *SchoolVO {
	if s == nil {
		return nil
	}
	return &SchoolVO{ID: s.ID, Name: s.Name, Number: s.Number, Introduce: s.Introduce, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

// CategoryVO children 只在树形查询中出现
type CategoryVO struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	ParentID  *uint64      `json:"parent_id"`
	Children  []CategoryVO `json:"children,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func NewCategoryVO(c *entities.Category) *CategoryVO {
	if c == nil {
		return nil
	}
	out := &CategoryVO{ID: c.ID, Name: c.Name, ParentID: c.ParentID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
	for i := range c.Children {
		out.Children = append(out.Children, *NewCategoryVO(&c.Children[i]))
	}
	return out
}

// NewCategoryTree 树形查询结果，二级分类为空时输出空数组
func NewCategoryTree(roots []entities.Category) []CategoryVO {
	out := make([]CategoryVO, 0, len(roots))
	for i := range roots {
		node := NewCategoryVO(&roots[i])
		if node.Children == nil {
			node.Children = []CategoryVO{}
		}
		out = append(out, *node)
	}
	return out
}

type SchoolCategoryVO struct {
	ID            uint64      `json:"id"`
	CategoryID    uint64      `json:"category_id"`
	SchoolID      uint64      `json:"school_id"`
	ExamFrequency int         `json:"exam_frequency"`
	Category      *CategoryVO `json:"category,omitempty"`
	School        *SchoolVO   `json:"school,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func NewSchoolCategoryVO(sc *entities.SchoolCategory) *SchoolCategoryVO {
	if sc == nil {
		return nil
	}
	return &SchoolCategoryVO{
		ID:            sc.ID,
		CategoryID:    sc.CategoryID,
		SchoolID:      sc.SchoolID,
		ExamFrequency: sc.ExamFrequency,
		Category:      NewCategoryVO(sc.Category),
		School:        NewSchoolVO(sc.School),
		CreatedAt:     sc.CreatedAt,
		UpdatedAt:     sc.UpdatedAt,
	}
}

// ListPage 后台通用分页列表，JSON 形如 {"users": [...], "pagination": {...}}
type ListPage[E any] struct {
	Key        string
	Items      []E
	Pagination Pagination
}

func (p ListPage[E]) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []E{}
	}
	return marshalKeyed(p.Key, items, p.Pagination)
}
