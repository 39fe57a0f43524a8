package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/auth"
	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/controller"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/service"
	"github.com/Xushengqwer/forum_service/testutils"
)

// envelope 解码用，data 延后按接口解析
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
}

// newTestApp 按 main 的方式组装全部依赖，会话存储、Kafka 与 COS 均关闭
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)
	logger := testutils.NewLogger(t)

	tokens, err := auth.NewTokenManager("router-test-secret", time.Hour)
	require.NoError(t, err)

	userRepo := mysql.NewUserRepository(db, logger)
	schoolRepo := mysql.NewSchoolRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	linkRepo := mysql.NewSchoolCategoryRepository(db, logger)
	postRepo := mysql.NewContentRepository[entities.Post, *entities.Post](db, logger)
	questionRepo := mysql.NewContentRepository[entities.Question, *entities.Question](db, logger)
	postLikeRepo := mysql.NewReactionRepository[entities.PostLike, *entities.PostLike](db, logger)
	questionFavoriteRepo := mysql.NewReactionRepository[entities.QuestionFavorite, *entities.QuestionFavorite](db, logger)

	authService := service.NewAuthService(db, userRepo, schoolRepo, tokens, nil, logger)
	ctrls := Controllers{
		Auth:     controller.NewAuthController(authService),
		Home:     controller.NewHomeController(service.NewHomeService(postRepo, userRepo, logger)),
		Category: controller.NewCategoryController(service.NewCategoryService(categoryRepo, userRepo, questionRepo, logger)),
		Media:    controller.NewMediaController(service.NewMediaService(nil, 0, logger)),
		Posts: controller.NewContentController(
			service.NewContentService[entities.Post, *entities.Post](db, postRepo, userRepo, schoolRepo.Exists, nil, logger, service.AudienceFront),
			service.AudienceFront),
		Questions: controller.NewContentController(
			service.NewContentService[entities.Question, *entities.Question](db, questionRepo, userRepo, categoryRepo.Exists, nil, logger, service.AudienceFront),
			service.AudienceFront),
		Reactions: []*controller.ReactionController{
			controller.NewReactionController(service.NewReactionService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](db, postRepo, postLikeRepo, nil, logger)),
			controller.NewReactionController(service.NewReactionService[entities.Question, *entities.Question, entities.QuestionFavorite, *entities.QuestionFavorite](db, questionRepo, questionFavoriteRepo, nil, logger)),
		},
		AdminPosts: controller.NewContentController(
			service.NewContentService[entities.Post, *entities.Post](db, postRepo, userRepo, schoolRepo.Exists, nil, logger, service.AudienceAdmin),
			service.AudienceAdmin),
		AdminQuestions: controller.NewContentController(
			service.NewContentService[entities.Question, *entities.Question](db, questionRepo, userRepo, categoryRepo.Exists, nil, logger, service.AudienceAdmin),
			service.AudienceAdmin),
		AdminReactions: []*controller.ReactionAdminController{
			controller.NewReactionAdminController(service.NewReactionAdminService[entities.Post, *entities.Post, entities.PostLike, *entities.PostLike](db, postRepo, postLikeRepo, userRepo, logger)),
		},
		AdminUsers:       controller.NewUserAdminController(service.NewUserAdminService(db, userRepo, schoolRepo, logger)),
		AdminSchools:     controller.NewSchoolAdminController(service.NewSchoolAdminService(schoolRepo, logger)),
		AdminCategories:  controller.NewCategoryAdminController(service.NewCategoryAdminService(db, categoryRepo, logger)),
		SchoolCategories: controller.NewSchoolCategoryAdminController(service.NewSchoolCategoryAdminService(db, linkRepo, schoolRepo, categoryRepo, logger)),
		Maintenance:      controller.NewMaintenanceController(service.NewMaintenanceService(db, postRepo, questionRepo, logger)),
	}

	return &testApp{
		engine: SetupRouter(logger, &appConfig.ForumConfig{}, authService, ctrls),
		db:     db,
	}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

// signIn 通过接口登录并返回令牌
func (a *testApp) signIn(t *testing.T, path, login string) string {
	t.Helper()
	code, env := a.do(t, http.MethodPost, path, "", gin.H{"login": login, "password": testutils.TestPassword})
	require.Equalf(t, http.StatusOK, code, "sign in failed: %+v", env)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

// TestAuthRoutes 注册、登录、当前用户与未登录访问
func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	code, env := app.do(t, http.MethodPost, "/api/v1/auth/sign_up", "", gin.H{
		"email": "carol@example.com", "username": "carol", "password": "secret123", "nickname": "卡罗尔",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Status)

	code, env = app.do(t, http.MethodPost, "/api/v1/auth/sign_up", "", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.NotEmpty(t, env.Errors)

	token := app.signIn(t, "/api/v1/auth/sign_in", "carol@example.com")

	code, env = app.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	var me struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "carol", me.User.Username)

	code, env = app.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Status)
	assert.NotNil(t, env.Errors)

	code, _ = app.do(t, http.MethodPost, "/api/v1/admin/auth/sign_in", "", gin.H{"login": "carol", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

// TestPostRoutes 发布、列表不含正文、详情带回复、点赞切换
func TestPostRoutes(t *testing.T) {
	app := newTestApp(t)
	author := testutils.CreateTestUser(app.db)
	token := app.signIn(t, "/api/v1/auth/sign_in", author.Username)

	code, env := app.do(t, http.MethodPost, "/api/v1/posts", "", gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env = app.do(t, http.MethodPost, "/api/v1/posts", token, gin.H{"title": "  ", "content": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Len(t, env.Errors, 2)

	code, env = app.do(t, http.MethodPost, "/api/v1/posts", token, gin.H{"title": "考研经验", "content": "每天背单词"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "创建文章成功。", env.Message)
	var created struct {
		Post struct {
			ID uint64 `json:"id"`
		} `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	postID := created.Post.ID
	require.NotZero(t, postID)

	code, _ = app.do(t, http.MethodPost, "/api/v1/posts", token, gin.H{"title": "回复", "content": "同意", "parent_id": postID})
	require.Equal(t, http.StatusCreated, code)

	code, env = app.do(t, http.MethodGet, "/api/v1/posts?currentPage=abc&pageSize=-2", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "查询文章列表成功。", env.Message)
	var list struct {
		Posts      []map[string]any `json:"posts"`
		Pagination struct {
			Total       int64 `json:"total"`
			CurrentPage int   `json:"currentPage"`
			PageSize    int   `json:"pageSize"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Posts, 1)
	assert.NotContains(t, list.Posts[0], "content")
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, 1, list.Pagination.CurrentPage)
	assert.Equal(t, 2, list.Pagination.PageSize)

	code, env = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "查询文章成功。", env.Message)
	var detail struct {
		Post struct {
			Content  string           `json:"content"`
			Children []map[string]any `json:"children"`
		} `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "每天背单词", detail.Post.Content)
	assert.Len(t, detail.Post.Children, 1)

	code, env = app.do(t, http.MethodGet, "/api/v1/posts/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "ID: 99999的文章未找到。", env.Message)

	code, _ = app.do(t, http.MethodGet, "/api/v1/posts/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = app.do(t, http.MethodPost, "/api/v1/likeposts", token, gin.H{"postId": postID})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "点赞成功。", env.Message)

	code, env = app.do(t, http.MethodPost, "/api/v1/likeposts", token, gin.H{"postId": postID})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "取消赞成功。", env.Message)

	code, env = app.do(t, http.MethodPost, "/api/v1/likeposts", token, gin.H{})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "需要传入postId", env.Message)

	code, env = app.do(t, http.MethodGet, "/api/v1/likeposts", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "查询用户点赞的帖子成功。", env.Message)

	code, env = app.do(t, http.MethodPost, "/api/v1/favoritequestions", token, gin.H{"questionId": 99999})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "题目不存在。", env.Message)
}

// TestAdminRoutes 后台需要管理员；关联行查找或创建区分 201 与 200
func TestAdminRoutes(t *testing.T) {
	app := newTestApp(t)
	normal := testutils.CreateTestUser(app.db)
	admin := testutils.CreateTestUser(app.db, testutils.WithRole(enums.RoleAdmin))
	normalToken := app.signIn(t, "/api/v1/auth/sign_in", normal.Username)
	adminToken := app.signIn(t, "/api/v1/admin/auth/sign_in", admin.Username)

	code, env := app.do(t, http.MethodGet, "/api/v1/admin/users", normalToken, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Status)

	code, env = app.do(t, http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "查询用户列表成功。", env.Message)

	post := testutils.CreateTestPost(app.db, normal.ID)
	body := gin.H{"post_id": post.ID, "user_id": normal.ID}

	code, env = app.do(t, http.MethodPost, "/api/v1/admin/postlikes", adminToken, body)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "创建 PostLike 成功", env.Message)
	var row struct {
		PostLike struct {
			ID     uint64 `json:"id"`
			PostID uint64 `json:"post_id"`
		} `json:"postLike"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, post.ID, row.PostLike.PostID)

	code, env = app.do(t, http.MethodPost, "/api/v1/admin/postlikes", adminToken, body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "更新 PostLike 成功", env.Message)

	code, env = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/posts/%d", post.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "查询帖子成功。", env.Message)
	var adminPost struct {
		Post struct {
			LikesCount uint64 `json:"likes_count"`
		} `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &adminPost))
	assert.Equal(t, uint64(1), adminPost.Post.LikesCount)

	code, env = app.do(t, http.MethodPost, "/api/v1/admin/maintenance/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var report struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, int64(0), report.Total)

	code, env = app.do(t, http.MethodPost, "/api/v1/admin/schools", adminToken, gin.H{"name": "复旦大学", "number": 10246})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "创建学校成功。", env.Message)

	code, env = app.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/postlikes/%d", row.PostLike.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "删除 PostLike 成功", env.Message)
}

// TestMemberRoutes 首页、章节树与上传都需要登录
func TestMemberRoutes(t *testing.T) {
	app := newTestApp(t)
	user := testutils.CreateTestUser(app.db)
	token := app.signIn(t, "/api/v1/auth/sign_in", user.Username)

	for _, path := range []string{"/api/v1/home", "/api/v1/categories"} {
		code, env := app.do(t, http.MethodGet, path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, code, path)
		assert.False(t, env.Status)
	}

	code, env := app.do(t, http.MethodGet, "/api/v1/home", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "查询首页数据成功。", env.Message)
	var home map[string][]any
	require.NoError(t, json.Unmarshal(env.Data, &home))
	assert.Contains(t, home, "schoolRelatedPosts")

	// 未设置目标院校
	code, _ = app.do(t, http.MethodGet, "/api/v1/categories", token, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = app.do(t, http.MethodGet, "/api/v1/categories/99999/questions", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "分类未找到", env.Message)

	code, _ = app.do(t, http.MethodPost, "/api/v1/media", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
