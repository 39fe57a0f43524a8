package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/response"
)

type stubResolver map[string]*entities.User

func (s stubResolver) ResolveToken(_ context.Context, token string) (*entities.User, error) {
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, myErrors.NewUnauthorized("令牌无效")
}

func newEngine(resolver IdentityResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		response.Success(c, "ok", gin.H{"id": CurrentUser(c).ID})
	})
	r.GET("/me", handlers...)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthenticate(t *testing.T) {
	resolver := stubResolver{"good": {Model: entities.Model{ID: 9}}}
	r := newEngine(resolver)

	cases := []struct {
		name   string
		header map[string]string
		status int
	}{
		{"missing", nil, http.StatusUnauthorized},
		{"token header", map[string]string{"token": "good"}, http.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer good"}, http.StatusOK},
		{"bad token", map[string]string{"token": "bad"}, http.StatusUnauthorized},
		{"malformed bearer", map[string]string{"Authorization": "good"}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			env := decode(t, w)
			assert.Equal(t, tc.status == http.StatusOK, env.Status)
		})
	}
}

func TestRequireRole(t *testing.T) {
	resolver := stubResolver{
		"admin": {Model: entities.Model{ID: 1}, Role: enums.RoleAdmin},
		"user":  {Model: entities.Model{ID: 2}, Role: enums.RoleNormal},
	}
	r := newEngine(resolver, RequireRole(enums.RoleAdmin))

	for token, want := range map[string]int{"admin": http.StatusOK, "user": http.StatusUnauthorized} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("token", token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, token)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(testLogger(t)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	assert.False(t, env.Status)
	assert.Equal(t, []string{"boom"}, env.Errors)
}
