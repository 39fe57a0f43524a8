package main

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/service"
	"github.com/Xushengqwer/forum_service/testutils"
)

func TestSeeder_Seed(t *testing.T) {
	gofakeit.Seed(42)
	db := testutils.SetupTestDB(t)
	logger := testutils.NewLogger(t)
	tokens, err := auth.NewTokenManager("seeder-secret", time.Hour)
	require.NoError(t, err)

	userRepo := mysql.NewUserRepository(db, logger)
	schoolRepo := mysql.NewSchoolRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	postRepo := mysql.NewContentRepository[entities.Post, *entities.Post](db, logger)
	questionRepo := mysql.NewContentRepository[entities.Question, *entities.Question](db, logger)
	likes := mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](db, logger)
	favorites := mysql.NewReactionRepository[entities.QuestionFavorite, *entities.QuestionFavorite](db, logger)

	seeder := &Seeder{
		Auth:           service.NewAuthService(db, userRepo, schoolRepo, tokens, nil, logger),
		Schools:        service.NewSchoolAdminService(schoolRepo, logger),
		Categories:     service.NewCategoryAdminService(db, categoryRepo, logger),
		SchoolCategory: service.NewSchoolCategoryAdminService(db, mysql.NewSchoolCategoryRepository(db, logger), schoolRepo, categoryRepo, logger),
		Posts:          service.NewContentService[entities.Post, *entities.Post](db, postRepo, userRepo, schoolRepo.Exists, nil, logger, service.AudienceFront),
		Questions:      service.NewContentService[entities.Question, *entities.Question](db, questionRepo, userRepo, categoryRepo.Exists, nil, logger, service.AudienceFront),
		Reactions: []service.ReactionService{
			service.NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](db, postRepo, likes, nil, logger),
			service.NewReactionService[entities.Question, *entities.Question, entities.QuestionFavorite, *entities.QuestionFavorite](db, questionRepo, favorites, nil, logger),
		},
		UserRepo: userRepo,
		Logger:   logger,
	}

	counts := Counts{Schools: 3, Categories: 2, Users: 4, Posts: 6, Questions: 5, Reactions: 12}
	require.NoError(t, seeder.Seed(context.Background(), counts))

	count := func(model any, query string, args ...any) int64 {
		var n int64
		tx := db.Model(model)
		if query != "" {
			tx = tx.Where(query, args...)
		}
		require.NoError(t, tx.Count(&n).Error)
		return n
	}

	assert.Equal(t, int64(3), count(&entities.School{}, ""))
	assert.Equal(t, int64(4), count(&entities.User{}, ""))
	assert.Equal(t, int64(2), count(&entities.Category{}, "parent_id IS NULL"))
	assert.GreaterOrEqual(t, count(&entities.Category{}, "parent_id IS NOT NULL"), int64(4))
	assert.Equal(t, int64(6), count(&entities.Post{}, "parent_id IS NULL"))
	assert.Equal(t, int64(5), count(&entities.Question{}, "parent_id IS NULL"))

	// 切换可能互相抵消，但计数列必须与关联行一致
	var likesSum, favoritesSum int64
	require.NoError(t, db.Model(&entities.Post{}).Select("COALESCE(SUM(likes_count), 0)").Scan(&likesSum).Error)
	require.NoError(t, db.Model(&entities.Question{}).Select("COALESCE(SUM(favorite_count), 0)").Scan(&favoritesSum).Error)
	assert.Equal(t, count(&entities.PostLike{}, ""), likesSum)
	assert.Equal(t, count(&entities.QuestionFavorite{}, ""), favoritesSum)
}
