package vo

import (
	"encoding/json"
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
)

// ClassificationVO 帖子所属院校或问答所属分类的摘要
type ClassificationVO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ContentItem 帖子/问答的单行视图。
// - Content 为 nil 时不输出，列表接口不返回正文
// - school_id/school 只出现在帖子上，category_id/category/difficulty 只出现在问答上
type ContentItem struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	Content  *string `json:"content,omitempty"`
	UserID   uint64  `json:"user_id"`
	ParentID *uint64 `json:"parent_id"`

	SchoolID   *uint64 `json:"school_id,omitempty"`
	CategoryID *uint64 `json:"category_id,omitempty"`
	Difficulty *int    `json:"difficulty,omitempty"`

	Video         *string             `json:"video"`
	CoverImage    *string             `json:"cover_image"`
	Type          enums.ContentType   `json:"type"`
	LikesCount    uint64              `json:"likes_count"`
	ViewsCount    uint64              `json:"views_count"`
	FavoriteCount uint64              `json:"favorite_count"`
	IsRecommended bool                `json:"is_recommended"`
	Status        enums.ContentStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`

	User     *UserVO           `json:"user,omitempty"`
	School   *ClassificationVO `json:"school,omitempty"`
	Category *ClassificationVO `json:"category,omitempty"`
	Parent   *ContentItem      `json:"parent,omitempty"`
}

// ContentNode 一级回复，带二级回复
type ContentNode struct {
	ContentItem
	Children []ContentItem `json:"children"`
}

// ContentDetail 详情：本身 + 一级回复 + 二级回复，不再向下展开
type ContentDetail struct {
	ContentItem
	Children []ContentNode `json:"children"`
}

// Pagination 列表分页信息
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// ContentPage 列表响应，JSON 形如 {"posts": [...], "pagination": {...}}，键随内容类型变化。
type ContentPage struct {
	Key        string
	Items      []ContentItem
	Pagination Pagination
}

func (p ContentPage) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []ContentItem{}
	}
	return json.Marshal(map[string]any{
		p.Key:        items,
		"pagination": p.Pagination,
	})
}

// NewContentItem 从实体构建视图；withContent 为 false 时不带正文。
func NewContentItem(rec entities.ContentRecord, withContent bool) ContentItem {
	base := rec.Base()
	item := ContentItem{
		ID:            base.ID,
		Title:         base.Title,
		UserID:        base.UserID,
		ParentID:      base.ParentID,
		Video:         base.Video,
		CoverImage:    base.CoverImage,
		Type:          base.Type,
		LikesCount:    base.LikesCount,
		ViewsCount:    base.ViewsCount,
		FavoriteCount: base.FavoriteCount,
		IsRecommended: base.IsRecommended,
		Status:        base.Status,
		CreatedAt:     base.CreatedAt,
		UpdatedAt:     base.UpdatedAt,
	}
	if withContent {
		content := base.Content
		item.Content = &content
	}

	var ref *ClassificationVO
	if id, name, ok := rec.ClassificationRef(); ok {
		ref = &ClassificationVO{ID: id, Name: name}
	}
	switch rec.Kind().Name {
	case entities.PostKind.Name:
		item.SchoolID = rec.ClassificationID()
		item.School = ref
	case entities.QuestionKind.Name:
		item.CategoryID = rec.ClassificationID()
		item.Category = ref
		item.Difficulty = rec.Difficulty()
	}

	if owner := rec.Owner(); owner != nil {
		item.User = NewUserVO(owner)
	}
	return item
}

// NewContentDetail 构建两层回复树，第三层即使被加载也不输出。
func NewContentDetail(rec entities.ContentRecord) ContentDetail {
	detail := ContentDetail{
		ContentItem: NewContentItem(rec, true),
		Children:    []ContentNode{},
	}
	for _, child := range rec.ChildRecords() {
		node := ContentNode{
			ContentItem: NewContentItem(child, true),
			Children:    []ContentItem{},
		}
		for _, grandchild := range child.ChildRecords() {
			node.Children = append(node.Children, NewContentItem(grandchild, true))
		}
		detail.Children = append(detail.Children, node)
	}
	return detail
}

// CategoryQuestionVO 分类下的题目，只含 id、标题、正文与创建时间
type CategoryQuestionVO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// HomeVO 首页四个列表
type HomeVO struct {
	RecommendedPosts   []ContentItem `json:"recommendedPosts"`
	ExperiencePosts    []ContentItem `json:"experiencePosts"`
	AnalysisPosts      []ContentItem `json:"analysisPosts"`
	SchoolRelatedPosts []ContentItem `json:"schoolRelatedPosts"`
}

// ToggleResult 点赞/收藏切换结果
// - Reacted 为切换后的状态
// - Count 为切换后的计数（点赞数或收藏数）
type ToggleResult struct {
	ContentID uint64 `json:"contentId"`
	Reacted   bool   `json:"reacted"`
	Count     uint64 `json:"count"`
	Message   string `json:"-"`
}

// MaintenanceReport 计数修复结果，键为 "<表>.<列>"
type MaintenanceReport struct {
	Repaired map[string]int64 `json:"repaired"`
	Total    int64            `json:"total"`
}

// MediaVO 上传结果，url 可直接作为 video / cover_image 使用
type MediaVO struct {
	URL       string `json:"url"`
	ObjectKey string `json:"objectKey"`
	Purpose   string `json:"purpose"`
}
