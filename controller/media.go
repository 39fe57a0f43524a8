package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

type MediaController struct {
	mediaService service.MediaService
}

func NewMediaController(mediaService service.MediaService) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload 上传视频或封面图
// @Summary      上传媒体文件
// @Description  返回的 url 可直接填入 video 或 cover_image。未配置对象存储时返回 500。
// @Tags         media (媒体)
// @Accept       multipart/form-data
// @Produce      json
// @Security     TokenAuth
// @Param        purpose formData string true "用途" Enums(video, cover)
// @Param        file formData file true "文件"
// @Success      201 {object} vo.MediaResponseWrapper "上传成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "缺少文件、用途不支持或文件过大"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Failure      500 {object} vo.ErrorResponseWrapper "对象存储不可用"
// @Router       /api/v1/media [post]
func (ctrl *MediaController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Failure(c, myErrors.NewBadRequest("请选择要上传的文件", err.Error()))
		return
	}
	media, err := ctrl.mediaService.Upload(c.Request.Context(), middleware.CurrentUser(c), c.PostForm("purpose"), file)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Created(c, "上传成功。", media)
}

// RegisterRoutes group 需已挂上认证中间件
func (ctrl *MediaController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/media", ctrl.Upload)
}
