package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// CategoryController 前台分类查询
type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// SchoolTree 目标院校要考的章节树
// @Summary      目标院校章节树
// @Description  当前用户目标院校关联的一级分类，及同样被该院校关联的二级分类
// @Tags         categories (分类)
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} vo.CategoryTreeResponseWrapper "data.categories 为两层树"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Failure      404 {object} vo.ErrorResponseWrapper "用户或其目标院校未找到"
// @Router       /api/v1/categories [get]
func (ctrl *CategoryController) SchoolTree(c *gin.Context) {
	categories, err := ctrl.categoryService.SchoolTree(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "查询目标学校要考的一级章节及其下的二级章节成功。", gin.H{"categories": categories})
}

// QuestionsUnder 分类及其子分类下的题目
// @Summary      分类下的题目
// @Description  分类本身与其直接子分类下的全部题目，id 倒序；data 直接是数组
// @Tags         categories (分类)
// @Produce      json
// @Security     TokenAuth
// @Param        categoryId path int true "分类 ID"
// @Success      200 {object} vo.CategoryQuestionsResponseWrapper "题目列表"
// @Failure      404 {object} vo.ErrorResponseWrapper "分类未找到"
// @Router       /api/v1/categories/{categoryId}/questions [get]
func (ctrl *CategoryController) QuestionsUnder(c *gin.Context) {
	id, err := pathID(c, "categoryId")
	if err != nil {
		response.Failure(c, err)
		return
	}
	questions, err := ctrl.categoryService.QuestionsUnder(c.Request.Context(), id)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "查询成功", questions)
}

func (ctrl *CategoryController) RegisterRoutes(group *gin.RouterGroup) {
	categories := group.Group("/categories")
	{
		categories.GET("", ctrl.SchoolTree)
		categories.GET("/:categoryId/questions", ctrl.QuestionsUnder)
	}
}
