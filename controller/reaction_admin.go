package controller

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// ReactionAdminController 后台维护四张点赞/收藏关联表
type ReactionAdminController struct {
	reactionAdminService service.ReactionAdminService
}

func NewReactionAdminController(reactionAdminService service.ReactionAdminService) *ReactionAdminController {
	return &ReactionAdminController{reactionAdminService: reactionAdminService}
}

func (ctrl *ReactionAdminController) label() string {
	return ctrl.reactionAdminService.Kind().Label
}

func (ctrl *ReactionAdminController) wrap(row *vo.ReactionVO) gin.H {
	return gin.H{vo.JSONKey(ctrl.reactionAdminService.Kind()): row}
}

// List 关联行分页列表
// @Summary      后台点赞/收藏列表
// @Tags         admin-reactions (后台点赞与收藏)
// @Produce      json
// @Security     TokenAuth
// @Param        currentPage query int false "页码"
// @Param        pageSize query int false "每页数量"
// @Success      200 {object} vo.ListPageResponseWrapper "键为 postLikes 等"
// @Failure      401 {object} vo.ErrorResponseWrapper "非管理员"
// @Router       /api/v1/admin/postlikes [get]
// @Router       /api/v1/admin/postfavorites [get]
// @Router       /api/v1/admin/questionlikes [get]
// @Router       /api/v1/admin/questionfavorites [get]
func (ctrl *ReactionAdminController) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadBinding(c, err)
		return
	}
	page, err := ctrl.reactionAdminService.List(c.Request.Context(), q)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "获取所有 "+ctrl.label()+" 成功", page)
}

// Get 单条关联行
// @Summary      后台点赞/收藏详情
// @Tags         admin-reactions (后台点赞与收藏)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "关联行 ID"
// @Success      200 {object} vo.ReactionResponseWrapper "键为 postLike 等"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/postlikes/{id} [get]
// @Router       /api/v1/admin/postfavorites/{id} [get]
// @Router       /api/v1/admin/questionlikes/{id} [get]
// @Router       /api/v1/admin/questionfavorites/{id} [get]
func (ctrl *ReactionAdminController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	row, err := ctrl.reactionAdminService.Get(c.Request.Context(), id)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "获取 "+ctrl.label()+" 成功", ctrl.wrap(row))
}

// Upsert 按 (内容, 用户) 查找或创建
// @Summary      后台创建点赞/收藏
// @Description  (content_id, user_id) 已存在时返回 200 与原记录，否则创建并返回 201。内容 id 可写作 post_id、question_id 或 content_id。
// @Tags         admin-reactions (后台点赞与收藏)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body body dto.ReactionWriteRequest true "关联行"
// @Success      200 {object} vo.ReactionResponseWrapper "已存在"
// @Success      201 {object} vo.ReactionResponseWrapper "新建"
// @Failure      400 {object} vo.ErrorResponseWrapper "内容或用户不存在"
// @Router       /api/v1/admin/postlikes [post]
// @Router       /api/v1/admin/postfavorites [post]
// @Router       /api/v1/admin/questionlikes [post]
// @Router       /api/v1/admin/questionfavorites [post]
func (ctrl *ReactionAdminController) Upsert(c *gin.Context) {
	var req dto.ReactionWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	row, created, err := ctrl.reactionAdminService.Upsert(c.Request.Context(), &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	if created {
		response.Created(c, "创建 "+ctrl.label()+" 成功", ctrl.wrap(row))
		return
	}
	response.Success(c, "更新 "+ctrl.label()+" 成功", ctrl.wrap(row))
}

// Update 把关联行改到另一对 (内容, 用户)
// @Summary      后台更新点赞/收藏
// @Tags         admin-reactions (后台点赞与收藏)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "关联行 ID"
// @Param        body body dto.ReactionWriteRequest true "关联行"
// @Success      200 {object} vo.ReactionResponseWrapper "更新成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "内容或用户不存在，或组合已存在"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/postlikes/{id} [put]
// @Router       /api/v1/admin/postfavorites/{id} [put]
// @Router       /api/v1/admin/questionlikes/{id} [put]
// @Router       /api/v1/admin/questionfavorites/{id} [put]
func (ctrl *ReactionAdminController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	var req dto.ReactionWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	row, err := ctrl.reactionAdminService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "更新 "+ctrl.label()+" 成功", ctrl.wrap(row))
}

// Delete 删除关联行，计数同步 -1
// @Summary      后台删除点赞/收藏
// @Tags         admin-reactions (后台点赞与收藏)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "关联行 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/postlikes/{id} [delete]
// @Router       /api/v1/admin/postfavorites/{id} [delete]
// @Router       /api/v1/admin/questionlikes/{id} [delete]
// @Router       /api/v1/admin/questionfavorites/{id} [delete]
func (ctrl *ReactionAdminController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	if err := ctrl.reactionAdminService.Delete(c.Request.Context(), id); err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "删除 "+ctrl.label()+" 成功", nil)
}

// RegisterRoutes group 为后台分组，路径 /postlikes 等
func (ctrl *ReactionAdminController) RegisterRoutes(group *gin.RouterGroup) {
	rows := group.Group("/" + strings.ToLower(ctrl.label()) + "s")
	{
		rows.GET("", ctrl.List)
		rows.GET("/:id", ctrl.Get)
		rows.POST("", ctrl.Upsert)
		rows.PUT("/:id", ctrl.Update)
		rows.DELETE("/:id", ctrl.Delete)
	}
}
