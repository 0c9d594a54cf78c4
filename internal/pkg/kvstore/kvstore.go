// Package kvstore 提供本地键值持久化，
// 承担浏览器 localStorage 的角色：主题偏好（"theme"）与会话令牌（"token"）
package kvstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store 键值持久化契约
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Memory 内存实现（测试用）
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory 创建内存键值存储
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get 读取键值
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set 写入键值
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete 删除键值，键不存在时为 no-op
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// envelope 文件持久化格式（带版本号，便于后续迁移）
type envelope struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

const envelopeVersion = 1

// File 文件实现，每次写入后立即落盘
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFile 创建文件键值存储并加载已有数据
// 文件不存在时从空状态开始，损坏的文件视同不存在
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Values != nil {
		f.values = env.Values
	}
	return f, nil
}

// Get 读取键值
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set 写入键值并落盘
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

// Delete 删除键值并落盘
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

func (f *File) flush() error {
	raw, err := json.MarshalIndent(envelope{Version: envelopeVersion, Values: f.values}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
