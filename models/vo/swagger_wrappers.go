package vo

// 以下类型只用于 swag 生成文档，描述 response.Envelope 在各接口下的具体形状。
// 列表的 data 键随资源变化（posts、questions、users 等），文档里统一写作 items。

// --- 用于错误响应 或 简单成功响应 ---

type emptyDoc struct{}

// BaseResponseWrapper 删除等不带业务数据的成功响应，data 固定为 {}
type BaseResponseWrapper struct {
	Status  bool     `json:"status" example:"true"`
	Message string   `json:"message" example:"删除帖子成功。"`
	Data    emptyDoc `json:"data"`
}

// ErrorResponseWrapper 失败响应，errors 为逐条原因，可能为空数组
type ErrorResponseWrapper struct {
	Status  bool     `json:"status" example:"false"`
	Message string   `json:"message" example:"请求参数错误"`
	Errors  []string `json:"errors" example:"title: 必须填写"`
}

// --- 用于成功响应且包含具体 Data 的包装器 ---

// contentPageDoc 与 ContentPage 的 JSON 形状一致
type contentPageDoc struct {
	Items      []ContentItem `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

type ContentPageResponseWrapper struct {
	Status  bool           `json:"status" example:"true"`
	Message string         `json:"message" example:"查询文章列表成功。"`
	Data    contentPageDoc `json:"data"`
}

type contentDetailDoc struct {
	Item ContentDetail `json:"item"`
}

type ContentDetailResponseWrapper struct {
	Status  bool             `json:"status" example:"true"`
	Message string           `json:"message" example:"查询文章成功。"`
	Data    contentDetailDoc `json:"data"`
}

type ToggleResponseWrapper struct {
	Status  bool         `json:"status" example:"true"`
	Message string       `json:"message" example:"点赞成功。"`
	Data    ToggleResult `json:"data"`
}

// listPageDoc 与 ListPage 的 JSON 形状一致
type listPageDoc struct {
	Items      []map[string]any `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

type ListPageResponseWrapper struct {
	Status  bool        `json:"status" example:"true"`
	Message string      `json:"message" example:"查询用户列表成功。"`
	Data    listPageDoc `json:"data"`
}

type ReactionResponseWrapper struct {
	Status  bool           `json:"status" example:"true"`
	Message string         `json:"message" example:"获取 PostLike 成功"`
	Data    map[string]any `json:"data"`
}

type categoryTreeDoc struct {
	Categories []CategoryVO `json:"categories"`
}

type CategoryTreeResponseWrapper struct {
	Status  bool            `json:"status" example:"true"`
	Message string          `json:"message" example:"查询目标学校要考的一级章节及其下的二级章节成功。"`
	Data    categoryTreeDoc `json:"data"`
}

type CategoryQuestionsResponseWrapper struct {
	Status  bool                 `json:"status" example:"true"`
	Message string               `json:"message" example:"查询成功"`
	Data    []CategoryQuestionVO `json:"data"`
}

type HomeResponseWrapper struct {
	Status  bool   `json:"status" example:"true"`
	Message string `json:"message" example:"查询首页数据成功。"`
	Data    HomeVO `json:"data"`
}

type userDoc struct {
	User UserVO `json:"user"`
}

type UserResponseWrapper struct {
	Status  bool    `json:"status" example:"true"`
	Message string  `json:"message" example:"查询当前用户成功。"`
	Data    userDoc `json:"data"`
}

type TokenResponseWrapper struct {
	Status  bool    `json:"status" example:"true"`
	Message string  `json:"message" example:"登录成功。"`
	Data    TokenVO `json:"data"`
}

type MediaResponseWrapper struct {
	Status  bool    `json:"status" example:"true"`
	Message string  `json:"message" example:"上传成功。"`
	Data    MediaVO `json:"data"`
}

type MaintenanceResponseWrapper struct {
	Status  bool              `json:"status" example:"true"`
	Message string            `json:"message" example:"计数修复完成。"`
	Data    MaintenanceReport `json:"data"`
}
