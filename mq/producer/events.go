package producer

import "time"

// ContentCreatedEvent 帖子/问答发布（含回复）
type ContentCreatedEvent struct {
	EventID          string    `json:"event_id"`
	Timestamp        time.Time `json:"timestamp"`
	Kind             string    `json:"kind"` // post / question
	ContentID        uint64    `json:"content_id"`
	ParentID         *uint64   `json:"parent_id,omitempty"`
	UserID           uint64    `json:"user_id"`
	ClassificationID *uint64   `json:"classification_id,omitempty"`
	Title            string    `json:"title"`
}

// ContentDeletedEvent 下游据此清理与该内容相关的数据
type ContentDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	ContentID uint64    `json:"content_id"`
	// OperatorID 执行删除的用户，作者或管理员
	OperatorID uint64 `json:"operator_id"`
}

// ReactionToggledEvent 点赞/收藏切换后的状态与计数
type ReactionToggledEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Reaction  string    `json:"reaction"` // post_like 等
	ContentID uint64    `json:"content_id"`
	UserID    uint64    `json:"user_id"`
	Reacted   bool      `json:"reacted"`
	Count     uint64    `json:"count"`
}
