package storage

import (
	"marketspace/internal/model"
)

// Session 登录态：token + 用户信息
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// SessionStore 登录态的类型化存取
type SessionStore struct {
	store *Store
}

// NewSessionStore 创建登录态存储
func NewSessionStore(store *Store) *SessionStore {
	return &SessionStore{store: store}
}

// Save 持久化登录态
func (s *SessionStore) Save(sess Session) error {
	if err := s.store.Save(KeyAuthToken, sess.Token); err != nil {
		return err
	}
	return s.store.Save(KeyUser, sess.User)
}

// Load 读取登录态，从未登录时返回空 Session
func (s *SessionStore) Load() (Session, error) {
	var sess Session
	if err := s.store.Get(KeyAuthToken, &sess.Token); err != nil {
		return Session{}, err
	}
	if err := s.store.Get(KeyUser, &sess.User); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Clear 清除登录态（登出）
func (s *SessionStore) Clear() error {
	if err := s.store.Remove(KeyAuthToken); err != nil {
		return err
	}
	return s.store.Remove(KeyUser)
}
