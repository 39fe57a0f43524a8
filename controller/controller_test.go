package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/response"
	"github.com/Xushengqwer/forum_service/service"
)

// stubContent 只记录调用参数的内容服务
type stubContent struct {
	kind      entities.ContentKind
	gotID     uint64
	deleteErr error
}

func (s *stubContent) Kind() entities.ContentKind { return s.kind }

func (s *stubContent) List(_ context.Context, q dto.ContentListQuery) (*vo.ContentPage, error) {
	page := q.Resolve()
	return &vo.ContentPage{Key: s.kind.Plural, Pagination: vo.Pagination{CurrentPage: page.CurrentPage, PageSize: page.PageSize}}, nil
}

func (s *stubContent) Get(_ context.Context, id uint64) (*vo.ContentDetail, error) {
	s.gotID = id
	return &vo.ContentDetail{ContentItem: vo.ContentItem{ID: id, Title: "标题"}}, nil
}

func (s *stubContent) Create(context.Context, *entities.User, *dto.ContentWriteRequest) (*vo.ContentDetail, error) {
	return &vo.ContentDetail{}, nil
}

func (s *stubContent) Update(_ context.Context, _ *entities.User, id uint64, _ *dto.ContentWriteRequest) (*vo.ContentDetail, error) {
	return &vo.ContentDetail{ContentItem: vo.ContentItem{ID: id}}, nil
}

func (s *stubContent) Delete(_ context.Context, _ *entities.User, id uint64) error {
	s.gotID = id
	return s.deleteErr
}

func serve(engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	var env response.Envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestContentController_Messages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		kind     entities.ContentKind
		audience service.Audience
		list     string
		detail   string
		deleted  string
	}{
		{"front posts", entities.PostKind, service.AudienceFront, "查询文章列表成功。", "查询文章成功。", "删除文章成功。"},
		{"front questions", entities.QuestionKind, service.AudienceFront, "查询题目列表成功。", "查询题目成功。", "删除题目成功。"},
		{"admin posts", entities.PostKind, service.AudienceAdmin, "查询帖子列表成功。", "查询帖子成功。", "删除帖子成功。"},
		{"admin questions", entities.QuestionKind, service.AudienceAdmin, "查询问题列表成功。", "查询问题成功。", "删除问题成功。"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubContent{kind: tt.kind}
			engine := gin.New()
			NewContentController(stub, tt.audience).RegisterRoutes(engine.Group(""))
			base := "/" + tt.kind.Plural

			w, env := serve(engine, http.MethodGet, base+"?pageSize=3", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.list, env.Message)
			assert.Contains(t, w.Body.String(), `"`+tt.kind.Plural+`":[]`)

			w, env = serve(engine, http.MethodGet, base+"/7", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.detail, env.Message)
			assert.Equal(t, uint64(7), stub.gotID)
			assert.Contains(t, w.Body.String(), `"`+tt.kind.Name+`":{`)

			w, env = serve(engine, http.MethodDelete, base+"/9", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.deleted, env.Message)
			assert.Contains(t, w.Body.String(), `"data":{}`)
		})
	}
}

func TestContentController_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubContent{kind: entities.PostKind, deleteErr: myErrors.NewUnauthorized("您没有权限操作此内容。")}
	engine := gin.New()
	NewContentController(stub, service.AudienceFront).RegisterRoutes(engine.Group(""))

	w, env := serve(engine, http.MethodGet, "/posts/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Status)
	assert.Equal(t, []string{"id: 必须是正整数"}, env.Errors)

	w, _ = serve(engine, http.MethodPost, "/posts", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = serve(engine, http.MethodDelete, "/posts/3", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "您没有权限操作此内容。", env.Message)
	assert.Equal(t, []string{}, env.Errors)
}

// 写接口经过守卫，读接口不经过
func TestContentController_WriteGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	guard := func(c *gin.Context) {
		response.Failure(c, myErrors.NewUnauthorized("缺少登录令牌"))
	}
	NewContentController(&stubContent{kind: entities.QuestionKind}, service.AudienceFront).RegisterRoutes(engine.Group(""), guard)

	w, _ := serve(engine, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusOK, w.Code)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		path := "/questions"
		if method != http.MethodPost {
			path += "/1"
		}
		w, env := serve(engine, method, path, `{}`)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, method)
		assert.Equal(t, "缺少登录令牌", env.Message)
	}
}

// stubReactions 返回固定结果的点赞/收藏服务
type stubReactions struct {
	content  entities.ContentKind
	reaction entities.ReactionKind
	target   uint64
}

func (s *stubReactions) ContentKind() entities.ContentKind { return s.content }
func (s *stubReactions) ReactionKind() entities.ReactionKind { return s.reaction }

func (s *stubReactions) Toggle(_ context.Context, _ *entities.User, contentID uint64) (*vo.ToggleResult, error) {
	s.target = contentID
	if contentID == 0 {
		return nil, myErrors.NewNotFound("需要传入" + s.content.IDField)
	}
	return &vo.ToggleResult{ContentID: contentID, Reacted: true, Count: 1, Message: s.reaction.AddedMessage}, nil
}

func (s *stubReactions) ListMine(context.Context, *entities.User, dto.PageQuery) (*vo.ContentPage, error) {
	return &vo.ContentPage{Key: s.content.Plural}, nil
}

func TestReactionController_Paths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		path    string
		body    string
		stub    *stubReactions
		listMsg string
	}{
		{"/likeposts", `{"postId": 5}`, &stubReactions{content: entities.PostKind, reaction: entities.PostLikeKind}, "查询用户点赞的帖子成功。"},
		{"/favoriteposts", `{"postId": 5}`, &stubReactions{content: entities.PostKind, reaction: entities.PostFavoriteKind}, "查询用户收藏的帖子成功。"},
		{"/likequestions", `{"questionId": 5}`, &stubReactions{content: entities.QuestionKind, reaction: entities.QuestionLikeKind}, "查询用户点赞的题目成功。"},
		{"/favoritequestions", `{"contentId": 5}`, &stubReactions{content: entities.QuestionKind, reaction: entities.QuestionFavoriteKind}, "查询用户收藏的题目成功。"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			engine := gin.New()
			NewReactionController(tt.stub).RegisterRoutes(engine.Group(""))

			w, env := serve(engine, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.stub.reaction.AddedMessage, env.Message)
			assert.Equal(t, uint64(5), tt.stub.target)

			w, env = serve(engine, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.listMsg, env.Message)
		})
	}
}

// TestReactionController_MissingTarget 空请求体与 {} 一样按未传 id 返回 404，坏 JSON 仍是 400
func TestReactionController_MissingTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewReactionController(&stubReactions{content: entities.PostKind, reaction: entities.PostLikeKind}).RegisterRoutes(engine.Group(""))

	for _, body := range []string{"", "{}"} {
		w, env := serve(engine, http.MethodPost, "/likeposts", body)
		assert.Equalf(t, http.StatusNotFound, w.Code, "body %q", body)
		assert.Equal(t, "需要传入postId", env.Message)
	}

	w, _ := serve(engine, http.MethodPost, "/likeposts", "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
