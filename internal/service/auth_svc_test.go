package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketspace/internal/model"
	"marketspace/internal/storage"
	"marketspace/pkg/logger"
	"marketspace/pkg/market"
)

// signToken 生成测试用 JWT；本地过期判断只解析不验签，随便什么密钥都行
func signToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1"}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newAuthFixture(t *testing.T, handler http.HandlerFunc) (*AuthService, *storage.SessionStore, *market.Client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	sessions := storage.NewSessionStore(store)
	api := market.New(server.URL, 5*time.Second)
	return NewAuthService(api, sessions, logger.NewNop()), sessions, api
}

func TestAuthService_SignIn(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	var gotAuth string

	svc, sessions, api := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sessions":
			json.NewEncoder(w).Encode(market.Session{
				Token: token,
				User:  model.User{ID: "user-1", Name: "小王", Email: "wang@example.com"},
			})
		case "/users/products":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]model.Product{})
		}
	})

	sess, err := svc.SignIn(context.Background(), "wang@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "小王", sess.User.Name)

	// 登录态已落盘
	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, token, saved.Token)

	// 后续请求自动带 token
	_, err = api.ListUserProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, gotAuth)
}

func TestAuthService_SignInFails(t *testing.T) {
	svc, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "邮箱或密码错误"})
	})

	_, err := svc.SignIn(context.Background(), "wang@example.com", "wrong")
	require.Error(t, err)

	// 登录失败不留登录态
	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.Empty(t, saved.Token)
}

func TestAuthService_Restore(t *testing.T) {
	t.Run("从未登录", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		_, err := svc.Restore()
		assert.ErrorIs(t, err, ErrNotSignedIn)
	})

	t.Run("登录态有效", func(t *testing.T) {
		svc, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		token := signToken(t, time.Now().Add(time.Hour))
		require.NoError(t, sessions.Save(storage.Session{Token: token, User: model.User{Name: "小王"}}))

		sess, err := svc.Restore()
		require.NoError(t, err)
		assert.Equal(t, "小王", sess.User.Name)
	})

	t.Run("token已过期", func(t *testing.T) {
		svc, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		token := signToken(t, time.Now().Add(-time.Hour))
		require.NoError(t, sessions.Save(storage.Session{Token: token, User: model.User{Name: "小王"}}))

		_, err := svc.Restore()
		assert.ErrorIs(t, err, ErrSessionExpired)

		// 过期登录态被清掉
		saved, err := sessions.Load()
		require.NoError(t, err)
		assert.Empty(t, saved.Token)
	})

	t.Run("没有exp的token按未过期处理", func(t *testing.T) {
		svc, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		token := signToken(t, time.Time{})
		require.NoError(t, sessions.Save(storage.Session{Token: token}))

		_, err := svc.Restore()
		assert.NoError(t, err)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	svc, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	require.NoError(t, sessions.Save(storage.Session{
		Token: signToken(t, time.Now().Add(time.Hour)),
		User:  model.User{Name: "小王"},
	}))

	require.NoError(t, svc.SignOut())

	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.Empty(t, saved.Token)
	assert.Empty(t, saved.User.Name)
}
