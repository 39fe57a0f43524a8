package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/auth"
	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/controller"
	"github.com/Xushengqwer/forum_service/dependencies"
	_ "github.com/Xushengqwer/forum_service/docs" // swagger 文档
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/forum_service/repo/redis"
	"github.com/Xushengqwer/forum_service/router"
	"github.com/Xushengqwer/forum_service/service"
)

// @title           Forum Service API
// @version         1.0
// @description     考研论坛服务：帖子与问答、两层回复、点赞收藏、院校章节树与后台管理。

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        token

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.ForumConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}

	// 4.1 Redis 可选，未配置时 sessions 保持 nil 接口
	var sessions redisrepo.SessionRepository
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	if rdb != nil {
		sessions = redisrepo.NewSessionRepository(rdb, logger)
		defer func() { _ = rdb.Close() }()
	}

	// 4.2 COS 可选
	storage, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
	}

	// 4.3 Kafka 生产者可选，不能把 nil 指针直接赋给接口
	var publisher service.EventPublisher
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger)
	if kafkaProducer != nil {
		publisher = kafkaProducer
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，事件通知已关闭")
	}

	tokens, tokenErr := auth.NewTokenManager(cfg.AuthConfig.JWTSecret, time.Duration(cfg.AuthConfig.TokenTTLHours)*time.Hour)
	if tokenErr != nil {
		logger.Fatal("初始化令牌管理器失败", zap.Error(tokenErr))
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	userRepo := mysql.NewUserRepository(db, logger)
	schoolRepo := mysql.NewSchoolRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	linkRepo := mysql.NewSchoolCategoryRepository(db, logger)
	postRepo := mysql.NewContentRepository[entities.Post, *entities.Post](db, logger)
	questionRepo := mysql.NewContentRepository[entities.Question, *entities.Question](db, logger)
	postLikeRepo := mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](db, logger)
	postFavoriteRepo := mysql.NewReactionRepository[entities.PostFavorite, *entities.PostFavorite](db, logger)
	questionLikeRepo := mysql.NewReactionRepository[entities.QuestionLike, *entities.QuestionLike](db, logger)
	questionFavoriteRepo := mysql.NewReactionRepository[entities.QuestionFavorite, *entities.QuestionFavorite](db, logger)
	logger.Debug("Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	authService := service.NewAuthService(db, userRepo, schoolRepo, tokens, sessions, logger)
	postService := service.NewContentService[entities.Post, *entities.Post](db, postRepo, userRepo, schoolRepo.Exists, publisher, logger, service.AudienceFront)
	questionService := service.NewContentService[entities.Question, *entities.Question](db, questionRepo, userRepo, categoryRepo.Exists, publisher, logger, service.AudienceFront)
	postAdminService := service.NewContentService[entities.Post, *entities.Post](db, postRepo, userRepo, schoolRepo.Exists, publisher, logger, service.AudienceAdmin)
	questionAdminService := service.NewContentService[entities.Question, *entities.Question](db, questionRepo, userRepo, categoryRepo.Exists, publisher, logger, service.AudienceAdmin)

	reactionServices := []service.ReactionService{
		service.NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](db, postRepo, postLikeRepo, publisher, logger),
		service.NewReactionService[entities.Post, *entities.Post, entities.PostFavorite, *entities.PostFavorite](db, postRepo, postFavoriteRepo, publisher, logger),
		service.NewReactionService[entities.Question, *entities.Question, entities.QuestionLike, *entities.QuestionLike](db, questionRepo, questionLikeRepo, publisher, logger),
		service.NewReactionService[entities.Question, *entities.Question, entities.QuestionFavorite, *entities.QuestionFavorite](db, questionRepo, questionFavoriteRepo, publisher, logger),
	}
	reactionAdminServices := []service.ReactionAdminService{
		service.NewReactionAdminService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](db, postRepo, postLikeRepo, userRepo, logger),
		service.NewReactionAdminService[entities.Post, *entities.Post, entities.PostFavorite, *entities.PostFavorite](db, postRepo, postFavoriteRepo, userRepo, logger),
		service.NewReactionAdminService[entities.Question, *entities.Question, entities.QuestionLike, *entities.QuestionLike](db, questionRepo, questionLikeRepo, userRepo, logger),
		service.NewReactionAdminService[entities.Question, *entities.Question, entities.QuestionFavorite, *entities.QuestionFavorite](db, questionRepo, questionFavoriteRepo, userRepo, logger),
	}

	homeService := service.NewHomeService(postRepo, userRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, userRepo, questionRepo, logger)
	mediaService := service.NewMediaService(storage, cfg.COSConfig.MaxUploadMB, logger)
	maintenanceService := service.NewMaintenanceService(db, postRepo, questionRepo, logger)
	userAdminService := service.NewUserAdminService(db, userRepo, schoolRepo, logger)
	schoolAdminService := service.NewSchoolAdminService(schoolRepo, logger)
	categoryAdminService := service.NewCategoryAdminService(db, categoryRepo, logger)
	schoolCategoryService := service.NewSchoolCategoryAdminService(db, linkRepo, schoolRepo, categoryRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	ctrls := router.Controllers{
		Auth:             controller.NewAuthController(authService),
		Home:             controller.NewHomeController(homeService),
		Category:         controller.NewCategoryController(categoryService),
		Media:            controller.NewMediaController(mediaService),
		Posts:            controller.NewContentController(postService, service.AudienceFront),
		Questions:        controller.NewContentController(questionService, service.AudienceFront),
		AdminPosts:       controller.NewContentController(postAdminService, service.AudienceAdmin),
		AdminQuestions:   controller.NewContentController(questionAdminService, service.AudienceAdmin),
		AdminUsers:       controller.NewUserAdminController(userAdminService),
		AdminSchools:     controller.NewSchoolAdminController(schoolAdminService),
		AdminCategories:  controller.NewCategoryAdminController(categoryAdminService),
		SchoolCategories: controller.NewSchoolCategoryAdminController(schoolCategoryService),
		Maintenance:      controller.NewMaintenanceController(maintenanceService),
	}
	for _, svc := range reactionServices {
		ctrls.Reactions = append(ctrls.Reactions, controller.NewReactionController(svc))
	}
	for _, svc := range reactionAdminServices {
		ctrls.AdminReactions = append(ctrls.AdminReactions, controller.NewReactionAdminController(svc))
	}

	// --- 8. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, authService, ctrls)

	// --- 9. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 10. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// 请求都已结束，此后不会再有新事件
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	logger.Info("服务已成功关闭")
}
