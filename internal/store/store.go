// Package store quản lý việc đọc/ghi các record JSON theo tên.
// Mỗi record là một file JSON human-readable, được ghi đè toàn bộ mỗi lần save —
// không có partial update, không có versioning.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/registry"
)

// Tên các record của bot
const (
	RecordProducts = "products"
	RecordSettings = "settings"
	RecordUsers    = "users"
)

// FileStore là store lưu record dưới dạng file JSON trong một thư mục.
// Ghi được serialize theo từng record (một mutex cho mỗi tên record) để hai
// lần save cùng record không bao giờ xen kẽ làm hỏng format file.
type FileStore struct {
	dir   string
	locks *registry.Registry[*sync.Mutex]
}

// NewFileStore tạo store với thư mục dữ liệu, tạo thư mục nếu chưa tồn tại
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{
		dir:   dir,
		locks: registry.NewRegistry[*sync.Mutex](),
	}, nil
}

// Dir trả về thư mục dữ liệu của store
func (s *FileStore) Dir() string {
	return s.dir
}

// path trả về đường dẫn file của một record
func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// lock trả về mutex của record, tạo mới nếu chưa có
func (s *FileStore) lock(name string) *sync.Mutex {
	mu, _ := s.locks.GetOrCreate(name, func() (*sync.Mutex, error) {
		return &sync.Mutex{}, nil
	})
	return mu
}

// Exists kiểm tra record đã có file trên đĩa chưa
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Load đọc record theo tên vào out.
// File không tồn tại hoặc nội dung không parse được đều trả về error —
// caller quyết định fallback về giá trị mặc định.
func (s *FileStore) Load(name string, out interface{}) error {
	mu := s.lock(name)
	mu.Lock()
	defer mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to read record %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.GetAppLogger().WithError(err).WithField("record", name).
			Error("💾 [STORE] Record bị hỏng, không parse được JSON")
		return fmt.Errorf("failed to parse record %s: %w", name, err)
	}

	return nil
}

// Save ghi đè toàn bộ record.
// Ghi ra file tạm rồi rename để một lần Load sau đó không bao giờ
// đọc được file ghi dở.
func (s *FileStore) Save(name string, value interface{}) error {
	mu := s.lock(name)
	mu.Lock()
	defer mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", name, err)
	}
	data = append(data, '\n')

	tmpPath := s.path(name) + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		logger.GetAppLogger().WithError(err).WithField("record", name).
			Error("💾 [STORE] Lỗi ghi file tạm")
		return fmt.Errorf("failed to write record %s (%v): %w", name, err, common.ErrStorageFailure)
	}

	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		logger.GetAppLogger().WithError(err).WithField("record", name).
			Error("💾 [STORE] Lỗi rename file tạm")
		return fmt.Errorf("failed to replace record %s (%v): %w", name, err, common.ErrStorageFailure)
	}

	return nil
}
