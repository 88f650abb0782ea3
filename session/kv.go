package session

import (
	"os"
	"path/filepath"
	"sync"
)

// KV is the minimal key-value surface the manager needs.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

type memKV struct {
	mu   sync.RWMutex
	vals map[string][]byte
}

func NewMemoryKV() KV {
	return &memKV{vals: map[string][]byte{}}
}

func (m *memKV) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	return v, ok
}

func (m *memKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}

type fileKV struct {
	mu  sync.Mutex
	dir string
}

// NewFileKV stores each key as one file under dir.
func NewFileKV(dir string) (KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileKV{dir: dir}, nil
}

func (f *fileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileKV) Get(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (f *fileKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return os.WriteFile(f.path(key), value, 0o600)
}

func (f *fileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
