package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/auth"
	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/dependencies"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var (
		configFile string
		counts     Counts
		seed       int64
	)
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&counts.Schools, "schools", 5, "学校数量")
	flag.IntVar(&counts.Categories, "categories", 6, "一级章节数量")
	flag.IntVar(&counts.Users, "users", 20, "用户数量")
	flag.IntVar(&counts.Posts, "posts", 50, "帖子数量")
	flag.IntVar(&counts.Questions, "questions", 50, "问答数量")
	flag.IntVar(&counts.Reactions, "reactions", 100, "每种点赞/收藏的切换次数")
	flag.Int64Var(&seed, "seed", 0, "随机种子，0 表示随机")
	flag.Parse()

	if counts.Users <= 0 {
		fmt.Println("错误: 用户数量必须大于 0")
		os.Exit(1)
	}
	if seed != 0 {
		gofakeit.Seed(seed)
	}

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.ForumConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	// --- 3. 初始化 MySQL ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}

	// --- 4. Kafka 可选，填充的数据同样会发出事件 ---
	var publisher service.EventPublisher
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger)
	if kafkaProducer != nil {
		publisher = kafkaProducer
		defer func() {
			if err := kafkaProducer.Close(); err != nil {
				logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
			}
		}()
	}

	tokens, tokenErr := auth.NewTokenManager(cfg.AuthConfig.JWTSecret, time.Duration(cfg.AuthConfig.TokenTTLHours)*time.Hour)
	if tokenErr != nil {
		logger.Fatal("初始化令牌管理器失败", zap.Error(tokenErr))
	}

	// --- 5. Repositories & Services ---
	userRepo := mysql.NewUserRepository(db, logger)
	schoolRepo := mysql.NewSchoolRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	linkRepo := mysql.NewSchoolCategoryRepository(db, logger)
	postRepo := mysql.NewContentRepository[entities.Post, *entities.Post](db, logger)
	questionRepo := mysql.NewContentRepository[entities.Question, *entities.Question](db, logger)

	seeder := &Seeder{
		Auth:           service.NewAuthService(db, userRepo, schoolRepo, tokens, nil, logger),
		Schools:        service.NewSchoolAdminService(schoolRepo, logger),
		Categories:     service.NewCategoryAdminService(db, categoryRepo, logger),
		SchoolCategory: service.NewSchoolCategoryAdminService(db, linkRepo, schoolRepo, categoryRepo, logger),
		Posts:          service.NewContentService[entities.Post, *entities.Post](db, postRepo, userRepo, schoolRepo.Exists, publisher, logger, service.AudienceFront),
		Questions:      service.NewContentService[entities.Question, *entities.Question](db, questionRepo, userRepo, categoryRepo.Exists, publisher, logger, service.AudienceFront),
		Reactions: []service.ReactionService{
			service.NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](db, postRepo, mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](db, logger), publisher, logger),
			service.NewReactionService[entities.Post, *entities.Post, entities.PostFavorite, *entities.PostFavorite](db, postRepo, mysql.NewReactionRepository[entities.PostFavorite, *entities.PostFavorite](db, logger), publisher, logger),
			service.NewReactionService[entities.Question, *entities.Question, entities.QuestionLike, *entities.QuestionLike](db, questionRepo, mysql.NewReactionRepository[entities.QuestionLike, *entities.QuestionLike](db, logger), publisher, logger),
			service.NewReactionService[entities.Question, *entities.Question, entities.QuestionFavorite, *entities.QuestionFavorite](db, questionRepo, mysql.NewReactionRepository[entities.QuestionFavorite, *entities.QuestionFavorite](db, logger), publisher, logger),
		},
		UserRepo: userRepo,
		Logger:   logger,
	}

	// --- 6. 执行数据填充 ---
	startTime := time.Now()
	if err := seeder.Seed(context.Background(), counts); err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}
	logger.Info("数据填充完成", zap.Duration("耗时", time.Since(startTime)))
}
