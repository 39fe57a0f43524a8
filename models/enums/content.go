package enums

// ContentStatus 帖子/问答的发布状态
type ContentStatus string

const (
	StatusPublished ContentStatus = "published"
	StatusDraft     ContentStatus = "draft"
	StatusArchived  ContentStatus = "archived"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusPublished, StatusDraft, StatusArchived:
		return true
	}
	return false
}

// ContentType 内容分类：1 经验贴, 2 院校分析, 3 求助答疑, 4 学习笔记
type ContentType int

const (
	TypeExperience ContentType = iota + 1
	TypeSchoolAnalysis
	TypeHelpRequest
	TypeStudyNotes
)

func (t ContentType) Valid() bool {
	return t >= TypeExperience && t <= TypeStudyNotes
}
