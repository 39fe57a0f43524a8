package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// AuthController 前台注册登录、后台登录与当前用户
type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// SignUp 注册
// @Summary      注册
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        body body dto.SignUpRequest true "注册信息"
// @Success      201 {object} vo.UserResponseWrapper "注册成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "字段校验失败或邮箱/用户名已被使用"
// @Router       /api/v1/auth/sign_up [post]
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	user, err := ctrl.authService.SignUp(c.Request.Context(), &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Created(c, "注册成功。", gin.H{"user": user})
}

func (ctrl *AuthController) signIn(c *gin.Context, adminOnly bool) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadBinding(c, err)
		return
	}
	token, err := ctrl.authService.SignIn(c.Request.Context(), &req, adminOnly)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "登录成功。", token)
}

// SignIn 前台登录
// @Summary      登录
// @Description  login 可以是邮箱或用户名；被禁用的用户无法登录
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        body body dto.SignInRequest true "登录信息"
// @Success      200 {object} vo.TokenResponseWrapper "data.token 为 JWT"
// @Failure      400 {object} vo.ErrorResponseWrapper "缺少登录名或密码"
// @Failure      401 {object} vo.ErrorResponseWrapper "密码错误或用户被禁用"
// @Failure      404 {object} vo.ErrorResponseWrapper "用户不存在"
// @Router       /api/v1/auth/sign_in [post]
func (ctrl *AuthController) SignIn(c *gin.Context) {
	ctrl.signIn(c, false)
}

// AdminSignIn 后台登录，要求管理员角色
// @Summary      后台登录
// @Tags         admin-auth (后台认证)
// @Accept       json
// @Produce      json
// @Param        body body dto.SignInRequest true "登录信息"
// @Success      200 {object} vo.TokenResponseWrapper "data.token 为 JWT"
// @Failure      401 {object} vo.ErrorResponseWrapper "密码错误或不是管理员"
// @Failure      404 {object} vo.ErrorResponseWrapper "用户不存在"
// @Router       /api/v1/admin/auth/sign_in [post]
func (ctrl *AuthController) AdminSignIn(c *gin.Context) {
	ctrl.signIn(c, true)
}

// SignOut 退出登录
// @Summary      退出登录
// @Description  启用会话存储时令牌立即失效
// @Tags         auth (认证)
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} vo.BaseResponseWrapper "退出成功"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Router       /api/v1/auth/sign_out [delete]
func (ctrl *AuthController) SignOut(c *gin.Context) {
	if err := ctrl.authService.SignOut(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		response.Failure(c, err)
		return
	}
	response.Success(c, "退出登录成功。", nil)
}

// Me 当前登录用户
// @Summary      当前用户
// @Tags         users (用户)
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} vo.UserResponseWrapper "当前用户，带目标院校"
// @Failure      401 {object} vo.ErrorResponseWrapper "未登录"
// @Router       /api/v1/users/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	response.Success(c, "查询当前用户成功。", gin.H{"user": vo.NewUserVO(middleware.CurrentUser(c))})
}

// RegisterRoutes 前台 /auth 与 /users/me；authenticate 为认证中间件
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup, authenticate gin.HandlerFunc) {
	authGroup := group.Group("/auth")
	{
		authGroup.POST("/sign_up", ctrl.SignUp)
		authGroup.POST("/sign_in", ctrl.SignIn)
		authGroup.DELETE("/sign_out", authenticate, ctrl.SignOut)
	}
	group.GET("/users/me", authenticate, ctrl.Me)
}

// RegisterAdminRoutes 后台登录不经过管理员校验
func (ctrl *AuthController) RegisterAdminRoutes(group *gin.RouterGroup) {
	group.POST("/admin/auth/sign_in", ctrl.AdminSignIn)
}
