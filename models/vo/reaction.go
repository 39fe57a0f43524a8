package vo

import (
	"encoding/json"
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// ReactionVO 后台点赞/收藏关联行。
// JSON 中内容 id 与内容对象的键随类型变化: post_id/post 或 question_id/question。
type ReactionVO struct {
	ID        uint64
	ContentID uint64
	UserID    uint64
	Content   *ContentItem
	User      *UserVO
	CreatedAt time.Time
	UpdatedAt time.Time

	kind entities.ReactionKind
}

func NewReactionVO(rec entities.ReactionRecord) ReactionVO {
	contentID, userID := rec.Pair()
	meta := rec.Meta()
	out := ReactionVO{
		ID:        meta.ID,
		ContentID: contentID,
		UserID:    userID,
		User:      NewUserVO(rec.Reactor()),
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
		kind:      rec.Kind(),
	}
	if content, ok := rec.ContentRecord(); ok {
		item := NewContentItem(content, true)
		out.Content = &item
	}
	return out
}

func (r ReactionVO) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"id":        r.ID,
		"user_id":   r.UserID,
		"createdAt": r.CreatedAt,
		"updatedAt": r.UpdatedAt,
	}
	body[r.kind.ContentColumn] = r.ContentID
	if r.Content != nil {
		body[lowerFirst(r.kind.ContentAssociation)] = r.Content
	}
	if r.User != nil {
		body["user"] = r.User
	}
	return json.Marshal(body)
}

func marshalKeyed(key string, items any, pagination Pagination) ([]byte, error) {
	return json.Marshal(map[string]any{
		key:          items,
		"pagination": pagination,
	})
}

// JSONKey 后台接口中单条记录的键: postLike、questionFavorite 等
func JSONKey(kind entities.ReactionKind) string {
	return lowerFirst(kind.Label)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
