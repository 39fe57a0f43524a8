package controller

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// ReactionController 前台点赞/收藏，路径为 /likeposts、/favoritequestions 这一类
type ReactionController struct {
	reactionService service.ReactionService
}

func NewReactionController(reactionService service.ReactionService) *ReactionController {
	return &ReactionController{reactionService: reactionService}
}

// action 返回路径前缀与中文动词
func (ctrl *ReactionController) action() (string, string) {
	if ctrl.reactionService.ReactionKind().CounterColumn == "likes_count" {
		return "like", "点赞"
	}
	return "favorite", "收藏"
}

// Toggle 点赞/收藏与取消
// @Summary      切换点赞/收藏
// @Description  未点赞（收藏）则创建并计数 +1，已点赞（收藏）则删除并计数 -1。帖子传 postId，问答传 questionId。
// @Tags         reactions (点赞与收藏)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body body dto.ReactionToggleRequest true "目标内容"
// @Success      200 {object} vo.ToggleResponseWrapper "切换后的状态与计数"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Failure      404 {object} vo.ErrorResponseWrapper "未传入内容 ID 或内容不存在"
// @Router       /api/v1/likeposts [post]
// @Router       /api/v1/favoriteposts [post]
// @Router       /api/v1/likequestions [post]
// @Router       /api/v1/favoritequestions [post]
func (ctrl *ReactionController) Toggle(c *gin.Context) {
	var req dto.ReactionToggleRequest
	// 空请求体等同 {}，交给服务层报告缺少 id
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadBinding(c, err)
		return
	}
	contentID := req.Target(ctrl.reactionService.ContentKind().IDField)
	result, err := ctrl.reactionService.Toggle(c.Request.Context(), middleware.CurrentUser(c), contentID)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, result.Message, result)
}

// ListMine 当前用户点赞/收藏过的内容
// @Summary      我点赞/收藏的内容
// @Description  id 倒序，不含正文，每条带父内容与分类
// @Tags         reactions (点赞与收藏)
// @Produce      json
// @Security     TokenAuth
// @Param        currentPage query int false "页码"
// @Param        pageSize query int false "每页数量"
// @Success      200 {object} vo.ContentPageResponseWrapper "键为 posts 或 questions"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Router       /api/v1/likeposts [get]
// @Router       /api/v1/favoriteposts [get]
// @Router       /api/v1/likequestions [get]
// @Router       /api/v1/favoritequestions [get]
func (ctrl *ReactionController) ListMine(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadBinding(c, err)
		return
	}
	page, err := ctrl.reactionService.ListMine(c.Request.Context(), middleware.CurrentUser(c), q)
	if err != nil {
		response.Failure(c, err)
		return
	}
	_, verb := ctrl.action()
	response.Success(c, fmt.Sprintf("查询用户%s的%s成功。", verb, ctrl.reactionService.ContentKind().MissingLabel), page)
}

// RegisterRoutes group 需已挂上认证中间件
func (ctrl *ReactionController) RegisterRoutes(group *gin.RouterGroup) {
	prefix, _ := ctrl.action()
	reactions := group.Group("/" + prefix + ctrl.reactionService.ContentKind().Plural)
	{
		reactions.POST("", ctrl.Toggle)
		reactions.GET("", ctrl.ListMine)
	}
}
