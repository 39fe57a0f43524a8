package controller

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// CatalogService 后台用户、学校、分类三类资源共同的增删改查形状
type CatalogService[Q any, W any, V any] interface {
	List(ctx context.Context, q Q) (*vo.ListPage[V], error)
	Get(ctx context.Context, id uint64) (V, error)
	Create(ctx context.Context, req *W) (V, error)
	Update(ctx context.Context, id uint64, req *W) (V, error)
	Delete(ctx context.Context, id uint64) error
}

// CatalogController 后台资源控制器
// - path: 路由段，如 /users
// - key: 单条记录在 data 中的键，如 user
// - label: 提示文案中的名称，如 用户
type CatalogController[Q any, W any, V any] struct {
	catalogService CatalogService[Q, W, V]
	path           string
	key            string
	label          string
}

func NewUserAdminController(userAdminService service.UserAdminService) *CatalogController[dto.UserListQuery, dto.UserWriteRequest, *vo.UserVO] {
	return &CatalogController[dto.UserListQuery, dto.UserWriteRequest, *vo.UserVO]{
		catalogService: userAdminService, path: "/users", key: "user", label: "用户",
	}
}

func NewSchoolAdminController(schoolAdminService service.SchoolAdminService) *CatalogController[dto.NameListQuery, dto.SchoolWriteRequest, *vo.SchoolVO] {
	return &CatalogController[dto.NameListQuery, dto.SchoolWriteRequest, *vo.SchoolVO]{
		catalogService: schoolAdminService, path: "/schools", key: "school", label: "学校",
	}
}

func NewCategoryAdminController(categoryAdminService service.CategoryAdminService) *CatalogController[dto.NameListQuery, dto.CategoryWriteRequest, *vo.CategoryVO] {
	return &CatalogController[dto.NameListQuery, dto.CategoryWriteRequest, *vo.CategoryVO]{
		catalogService: categoryAdminService, path: "/categories", key: "category", label: "分类",
	}
}

// List 后台分页列表
// @Summary      后台资源列表
// @Description  用户按 username/email 模糊筛选，学校与分类按 name 模糊筛选
// @Tags         admin-catalog (后台资源)
// @Produce      json
// @Security     TokenAuth
// @Param        currentPage query int false "页码"
// @Param        pageSize query int false "每页数量"
// @Param        name query string false "名称模糊搜索（学校、分类）"
// @Param        username query string false "用户名模糊搜索（用户）"
// @Param        email query string false "邮箱模糊搜索（用户）"
// @Success      200 {object} vo.ListPageResponseWrapper "键为 users、schools 或 categories"
// @Failure      401 {object} vo.ErrorResponseWrapper "非管理员"
// @Router       /api/v1/admin/users [get]
// @Router       /api/v1/admin/schools [get]
// @Router       /api/v1/admin/categories [get]
func (ctrl *CatalogController[Q, W, V]) List(c *gin.Context) {
	var q Q
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadBinding(c, err)
		return
	}
	page, err := ctrl.catalogService.List(c.Request.Context(), q)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("查询%s列表成功。", ctrl.label), page)
}

// Get 后台详情
// @Summary      后台资源详情
// @Tags         admin-catalog (后台资源)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "ID"
// @Success      200 {object} vo.BaseResponseWrapper "data 键为 user、school 或 category"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/users/{id} [get]
// @Router       /api/v1/admin/schools/{id} [get]
// @Router       /api/v1/admin/categories/{id} [get]
func (ctrl *CatalogController[Q, W, V]) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	item, err := ctrl.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("查询%s成功。", ctrl.label), gin.H{ctrl.key: item})
}

// Create 后台创建
// @Summary      后台创建资源
// @Tags         admin-catalog (后台资源)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body body object true "dto.UserWriteRequest / dto.SchoolWriteRequest / dto.CategoryWriteRequest"
// @Success      201 {object} vo.BaseResponseWrapper "创建成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "字段校验失败"
// @Router       /api/v1/admin/users [post]
// @Router       /api/v1/admin/schools [post]
// @Router       /api/v1/admin/categories [post]
func (ctrl *CatalogController[Q, W, V]) Create(c *gin.Context) {
	var req W
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	item, err := ctrl.catalogService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("创建%s成功。", ctrl.label), gin.H{ctrl.key: item})
}

// Update 后台部分更新
// @Summary      后台更新资源
// @Tags         admin-catalog (后台资源)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "ID"
// @Param        body body object true "只包含要修改的字段"
// @Success      200 {object} vo.BaseResponseWrapper "更新成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "字段校验失败"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/users/{id} [put]
// @Router       /api/v1/admin/schools/{id} [put]
// @Router       /api/v1/admin/categories/{id} [put]
func (ctrl *CatalogController[Q, W, V]) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	var req W
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	item, err := ctrl.catalogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("更新%s成功。", ctrl.label), gin.H{ctrl.key: item})
}

// Delete 后台删除，关联数据按外键策略级联或置空
// @Summary      后台删除资源
// @Tags         admin-catalog (后台资源)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/users/{id} [delete]
// @Router       /api/v1/admin/schools/{id} [delete]
// @Router       /api/v1/admin/categories/{id} [delete]
func (ctrl *CatalogController[Q, W, V]) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	if err := ctrl.catalogService.Delete(c.Request.Context(), id); err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("删除%s成功。", ctrl.label), nil)
}

func (ctrl *CatalogController[Q, W, V]) RegisterRoutes(group *gin.RouterGroup) {
	items := group.Group(ctrl.path)
	{
		items.GET("", ctrl.List)
		items.GET("/:id", ctrl.Get)
		items.POST("", ctrl.Create)
		items.PUT("/:id", ctrl.Update)
		items.DELETE("/:id", ctrl.Delete)
	}
}

// SchoolCategoryAdminController 院校-分类关联，创建走查找或创建
type SchoolCategoryAdminController struct {
	schoolCategoryService service.SchoolCategoryAdminService
}

func NewSchoolCategoryAdminController(schoolCategoryService service.SchoolCategoryAdminService) *SchoolCategoryAdminController {
	return &SchoolCategoryAdminController{schoolCategoryService: schoolCategoryService}
}

// List 关联列表
// @Summary      院校-分类关联列表
// @Tags         admin-catalog (后台资源)
// @Produce      json
// @Security     TokenAuth
// @Param        currentPage query int false "页码"
// @Param        pageSize query int false "每页数量"
// @Param        school_id query int false "按院校筛选"
// @Success      200 {object} vo.ListPageResponseWrapper "键为 schoolCategories"
// @Router       /api/v1/admin/schoolCategories [get]
func (ctrl *SchoolCategoryAdminController) List(c *gin.Context) {
	var q dto.SchoolCategoryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadBinding(c, err)
		return
	}
	page, err := ctrl.schoolCategoryService.List(c.Request.Context(), q)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "获取所有 SchoolCategory 成功", page)
}

// Get 关联详情
// @Summary      院校-分类关联详情
// @Tags         admin-catalog (后台资源)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "关联 ID"
// @Success      200 {object} vo.BaseResponseWrapper "data.schoolCategory"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/schoolCategories/{id} [get]
func (ctrl *SchoolCategoryAdminController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	row, err := ctrl.schoolCategoryService.Get(c.Request.Context(), id)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "获取 SchoolCategory 成功", gin.H{"schoolCategory": row})
}

// Upsert 按 (category_id, school_id) 查找或创建
// @Summary      创建院校-分类关联
// @Description  组合已存在时只更新考查频率并返回 200，否则创建并返回 201
// @Tags         admin-catalog (后台资源)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body body dto.SchoolCategoryWriteRequest true "关联"
// @Success      200 {object} vo.BaseResponseWrapper "已存在，已更新"
// @Success      201 {object} vo.BaseResponseWrapper "新建"
// @Failure      400 {object} vo.ErrorResponseWrapper "院校或分类不存在"
// @Router       /api/v1/admin/schoolCategories [post]
func (ctrl *SchoolCategoryAdminController) Upsert(c *gin.Context) {
	var req dto.SchoolCategoryWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	row, created, err := ctrl.schoolCategoryService.Upsert(c.Request.Context(), &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	if created {
		response.Created(c, "创建 SchoolCategory 成功", gin.H{"schoolCategory": row})
		return
	}
	response.Success(c, "更新 SchoolCategory 成功", gin.H{"schoolCategory": row})
}

// Update 修改关联
// @Summary      更新院校-分类关联
// @Tags         admin-catalog (后台资源)
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "关联 ID"
// @Param        body body dto.SchoolCategoryWriteRequest true "关联"
// @Success      200 {object} vo.BaseResponseWrapper "更新成功"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/schoolCategories/{id} [put]
func (ctrl *SchoolCategoryAdminController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	var req dto.SchoolCategoryWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	row, err := ctrl.schoolCategoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "更新 SchoolCategory 成功", gin.H{"schoolCategory": row})
}

// Delete 删除关联
// @Summary      删除院校-分类关联
// @Tags         admin-catalog (后台资源)
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "关联 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.ErrorResponseWrapper "记录不存在"
// @Router       /api/v1/admin/schoolCategories/{id} [delete]
func (ctrl *SchoolCategoryAdminController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Failure(c, err)
		return
	}
	if err := ctrl.schoolCategoryService.Delete(c.Request.Context(), id); err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "删除 SchoolCategory 成功", nil)
}

func (ctrl *SchoolCategoryAdminController) RegisterRoutes(group *gin.RouterGroup) {
	links := group.Group("/schoolCategories")
	{
		links.GET("", ctrl.List)
		links.GET("/:id", ctrl.Get)
		links.POST("", ctrl.Upsert)
		links.PUT("/:id", ctrl.Update)
		links.DELETE("/:id", ctrl.Delete)
	}
}
