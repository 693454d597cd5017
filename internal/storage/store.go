package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store key 作用域的 JSON 存储
// 每个 key 对应状态目录下的一个 <key>.json 文件
type Store struct {
	dir string
}

// NewStore 创建存储，状态目录不存在时自动建立
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("无法创建状态目录 %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save 序列化并写入，覆盖旧值
// 先写临时文件再重命名，避免写到一半留下损坏的 JSON
func (s *Store) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", key, err)
	}

	tmp := s.path(key) + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("写入 %s 失败: %w", key, err)
	}
	return nil
}

// Get 读取并反序列化到 out
// key 从未写入过不算错误，out 保持零值返回
func (s *Store) Get(key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("读取 %s 失败: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("解析 %s 失败: %w", key, err)
	}
	return nil
}

// Remove 删除条目，key 不存在时静默成功（幂等）
func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("删除 %s 失败: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
