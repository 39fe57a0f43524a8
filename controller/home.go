package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

type HomeController struct {
	homeService service.HomeService
}

func NewHomeController(homeService service.HomeService) *HomeController {
	return &HomeController{homeService: homeService}
}

// Home 首页
// @Summary      首页数据
// @Description  推荐、经验、分析与目标院校相关四个列表，各最多 5 条已发布帖子
// @Tags         home (首页)
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} vo.HomeResponseWrapper "四个列表"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Failure      404 {object} vo.ErrorResponseWrapper "用户不存在"
// @Router       /api/v1/home [get]
func (ctrl *HomeController) Home(c *gin.Context) {
	home, err := ctrl.homeService.Home(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "查询首页数据成功。", home)
}

func (ctrl *HomeController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/home", ctrl.Home)
}
