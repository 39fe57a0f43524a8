package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

type MaintenanceController struct {
	maintenanceService service.MaintenanceService
}

func NewMaintenanceController(maintenanceService service.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService}
}

// Reconcile 以关联表为准修复点赞数与收藏数
// @Summary      修复计数
// @Description  按四张关联表的行数重算 likes_count 与 favorite_count，返回每列修复的行数
// @Tags         admin-maintenance (后台维护)
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} vo.MaintenanceResponseWrapper "修复结果"
// @Failure      401 {object} vo.ErrorResponseWrapper "非管理员"
// @Router       /api/v1/admin/maintenance/reconcile [post]
func (ctrl *MaintenanceController) Reconcile(c *gin.Context) {
	report, err := ctrl.maintenanceService.ReconcileCounters(c.Request.Context())
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "计数修复完成。", report)
}

func (ctrl *MaintenanceController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/maintenance/reconcile", ctrl.Reconcile)
}
