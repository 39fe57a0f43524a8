package controller

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// ContentController 帖子与问答共用的控制器，前台与后台各注册一份
type ContentController struct {
	contentService service.ContentService
	audience       service.Audience
}

func NewContentController(contentService service.ContentService, audience service.Audience) *ContentController {
	return &ContentController{contentService: contentService, audience: audience}
}

func (ctrl *ContentController) label() string {
	if ctrl.audience == service.AudienceAdmin {
		return ctrl.contentService.Kind().AdminLabel
	}
	return ctrl.contentService.Kind().Label
}

// List 分页列表
// @Summary      帖子/问答列表
// @Description  前台只返回根内容且不含正文；后台返回全部内容并带作者与分类。pageSize 不设上限。
// @Tags         content (帖子与问答)
// @Produce      json
// @Param        currentPage query int false "页码，非数字或 0 取 1，负数取绝对值"
// @Param        pageSize query int false "每页数量，非数字或 0 取 10，负数取绝对值"
// @Param        title query string false "标题模糊搜索"
// @Param        content query string false "正文模糊搜索"
// @Success      200 {object} vo.ContentPageResponseWrapper "键为 posts 或 questions"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts [get]
// @Router       /api/v1/questions [get]
// @Router       /api/v1/admin/posts [get]
// @Router       /api/v1/admin/questions [get]
func (ctrl *ContentController) List(c *gin.Context) {
	var q dto.ContentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadBinding(c, err)
		return
	}
	page, err := ctrl.contentService.List(c.Request.Context(), q)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("查询%s列表成功。", ctrl.label()), page)
}

// Get 详情
// @Summary      帖子/问答详情
// @Description  返回内容本身、一级回复及其二级回复，不再向下展开
// @Tags         content (帖子与问答)
// @Produce      json
// @Param        id path int true "内容 ID"
// @Success      200 {object} vo.ContentDetailResponseWrapper "键为 post 或 question"
// @Failure      400 {object} vo.ErrorResponseWrapper "ID 格式错误"
// @Failure      404 {object} vo.ErrorResponseWrapper "内容不存在"
// @Router       /api/v1/posts/{id} [get]
// @Router       /api/v1/questions/{id} [get]
// @Router       /api/v1/admin/posts/{id} [get]
// @Router       /api/v1/admin/questions/{id} [get]
func (ctrl *ContentController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	detail, err := ctrl.contentService.Get(c.Request.Context(), id)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("查询%s成功。", ctrl.label()), gin.H{ctrl.contentService.Kind().Name: detail})
}

// Create 发布内容或回复
// @Summary      发布帖子/问答
// @Description  title 与 content 必填；parent_id 指向同类内容即为回复。status 与 is_recommended 仅管理员可设置。
// @Tags         content (帖子与问答)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body body dto.ContentWriteRequest true "内容"
// @Success      201 {object} vo.ContentDetailResponseWrapper "创建成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "字段校验失败"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录或无权限"
// @Router       /api/v1/posts [post]
// @Router       /api/v1/questions [post]
// @Router       /api/v1/admin/posts [post]
// @Router       /api/v1/admin/questions [post]
func (ctrl *ContentController) Create(c *gin.Context) {
	var req dto.ContentWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	detail, err := ctrl.contentService.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("创建%s成功。", ctrl.label()), gin.H{ctrl.contentService.Kind().Name: detail})
}

// Update 部分更新
// @Summary      更新帖子/问答
// @Description  只修改提供了的字段，作者本人或管理员可操作
// @Tags         content (帖子与问答)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "内容 ID"
// @Param        body body dto.ContentWriteRequest true "要修改的字段"
// @Success      200 {object} vo.ContentDetailResponseWrapper "更新成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "字段校验失败"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录或无权限"
// @Failure      404 {object} vo.ErrorResponseWrapper "内容不存在"
// @Router       /api/v1/posts/{id} [put]
// @Router       /api/v1/questions/{id} [put]
// @Router       /api/v1/admin/posts/{id} [put]
// @Router       /api/v1/admin/questions/{id} [put]
func (ctrl *ContentController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	var req dto.ContentWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	detail, err := ctrl.contentService.Update(c.Request.Context(), middleware.CurrentUser(c), id, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("更新%s成功。", ctrl.label()), gin.H{ctrl.contentService.Kind().Name: detail})
}

// Delete 删除内容，回复与点赞/收藏随之删除
// @Summary      删除帖子/问答
// @Tags         content (帖子与问答)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "内容 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录或无权限"
// @Failure      404 {object} vo.ErrorResponseWrapper "内容不存在"
// @Router       /api/v1/posts/{id} [delete]
// @Router       /api/v1/questions/{id} [delete]
// @Router       /api/v1/admin/posts/{id} [delete]
// @Router       /api/v1/admin/questions/{id} [delete]
func (ctrl *ContentController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	if err := ctrl.contentService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("删除%s成功。", ctrl.label()), nil)
}

// RegisterRoutes 读接口公开，写接口挂上 writeGuards（通常是认证中间件）
func (ctrl *ContentController) RegisterRoutes(group *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuards...), h)
	}

	items := group.Group("/" + ctrl.contentService.Kind().Plural)
	{
		items.GET("", ctrl.List)
		items.GET("/:id", ctrl.Get)
		items.POST("", guarded(ctrl.Create)...)
		items.PUT("/:id", guarded(ctrl.Update)...)
		items.DELETE("/:id", guarded(ctrl.Delete)...)
	}
}
