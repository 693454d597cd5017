package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"marketspace/internal/storage"
	"marketspace/pkg/market"
)

var (
	// ErrNotSignedIn 本地没有登录态
	ErrNotSignedIn = errors.New("尚未登录，请先登录")
	// ErrSessionExpired 本地 token 已过期
	ErrSessionExpired = errors.New("登录已过期，请重新登录")
)

// AuthService 登录态管理：标准的"存 token、带 token"模式
// 登录成功后 token 落盘，之后每次启动恢复并挂到客户端上
type AuthService struct {
	api      *market.Client
	sessions *storage.SessionStore
	log      *zap.SugaredLogger
}

// NewAuthService 创建鉴权服务
func NewAuthService(api *market.Client, sessions *storage.SessionStore, log *zap.SugaredLogger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log}
}

// SignIn 登录并持久化登录态
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*storage.Session, error) {
	resp, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := storage.Session{Token: resp.Token, User: resp.User}
	if err := s.sessions.Save(sess); err != nil {
		return nil, fmt.Errorf("保存登录态失败: %w", err)
	}

	s.api.SetToken(sess.Token)
	s.log.Infow("[AuthService] 登录成功", "user", resp.User.Name)
	return &sess, nil
}

// Restore 启动时恢复登录态
// 没有登录态返回 ErrNotSignedIn；token 过期则清掉本地登录态并返回 ErrSessionExpired
func (s *AuthService) Restore() (*storage.Session, error) {
	sess, err := s.sessions.Load()
	if err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, ErrNotSignedIn
	}

	if expired(sess.Token) {
		// 过期的登录态留着只会让后续请求 401，直接清掉引导重新登录
		if err := s.sessions.Clear(); err != nil {
			s.log.Warnw("[AuthService] 清除过期登录态失败", "err", err)
		}
		return nil, ErrSessionExpired
	}

	s.api.SetToken(sess.Token)
	return &sess, nil
}

// SignOut 登出：清除本地登录态和客户端上的 token
func (s *AuthService) SignOut() error {
	s.api.ClearToken()
	return s.sessions.Clear()
}

// SignUp 注册新用户，avatar 可为 nil
func (s *AuthService) SignUp(ctx context.Context, req market.SignUpRequest) error {
	return s.api.SignUp(ctx, req)
}

// expired 本地判断 token 是否过期
// 只解析不验签（签名校验是后端的事），解析不出 exp 的按未过期处理，交给后端把关
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
