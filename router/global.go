package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/controller"
	"github.com/Xushengqwer/forum_service/middleware"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/response"
)

// registrar 后台资源控制器是泛型实例，这里只关心路由注册
type registrar interface {
	RegisterRoutes(group *gin.RouterGroup)
}

// Controllers 由 main 组装好后交给 SetupRouter
type Controllers struct {
	Auth      *controller.AuthController
	Home      *controller.HomeController
	Category  *controller.CategoryController
	Media     *controller.MediaController
	Posts     *controller.ContentController
	Questions *controller.ContentController
	Reactions []*controller.ReactionController

	AdminPosts       *controller.ContentController
	AdminQuestions   *controller.ContentController
	AdminReactions   []*controller.ReactionAdminController
	AdminUsers       registrar
	AdminSchools     registrar
	AdminCategories  registrar
	SchoolCategories *controller.SchoolCategoryAdminController
	Maintenance      *controller.MaintenanceController
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.ForumConfig,
	resolver middleware.IdentityResolver,
	ctrls Controllers,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 校验错误使用 json 字段名
	response.RegisterJSONFieldNames()

	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery，输出统一信封
	router.Use(middleware.Recovery(logger))

	// 3. Request Logger
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout，未配置时不启用
	if cfg.ServerConfig.RequestTimeout > 0 {
		requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
		router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))
	}
	logger.Debug("已注册全局中间件")

	authenticate := middleware.Authenticate(resolver)

	v1 := router.Group("/api/v1")

	// --- 前台 ---
	ctrls.Auth.RegisterRoutes(v1, authenticate)
	ctrls.Posts.RegisterRoutes(v1, authenticate)
	ctrls.Questions.RegisterRoutes(v1, authenticate)

	member := v1.Group("", authenticate)
	ctrls.Home.RegisterRoutes(member)
	ctrls.Category.RegisterRoutes(member)
	ctrls.Media.RegisterRoutes(member)
	for _, reactions := range ctrls.Reactions {
		reactions.RegisterRoutes(member)
	}

	// --- 后台 ---
	ctrls.Auth.RegisterAdminRoutes(v1)
	admin := v1.Group("/admin", authenticate, middleware.RequireRole(enums.RoleAdmin))
	ctrls.AdminPosts.RegisterRoutes(admin)
	ctrls.AdminQuestions.RegisterRoutes(admin)
	for _, reactions := range ctrls.AdminReactions {
		reactions.RegisterRoutes(admin)
	}
	ctrls.AdminUsers.RegisterRoutes(admin)
	ctrls.AdminSchools.RegisterRoutes(admin)
	ctrls.AdminCategories.RegisterRoutes(admin)
	ctrls.SchoolCategories.RegisterRoutes(admin)
	ctrls.Maintenance.RegisterRoutes(admin)
	logger.Info("所有控制器路由已注册到 /api/v1 分组")

	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
