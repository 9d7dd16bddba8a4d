package catalog

import (
	"fmt"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/store"
)

// Service xử lý các thao tác trên danh sách sản phẩm.
// Mỗi thao tác load record mới từ store, mutate rồi save ngay — không cache.
type Service struct {
	store *store.FileStore
}

// NewService tạo mới catalog service
func NewService(st *store.FileStore) *Service {
	return &Service{store: st}
}

// Load đọc danh sách sản phẩm từ store.
// File thiếu hoặc hỏng thì trả về danh sách mặc định (đã log), không bao giờ fatal.
func (s *Service) Load() Catalog {
	var c Catalog
	if err := s.store.Load(store.RecordProducts, &c); err != nil {
		logger.GetAppLogger().WithError(err).Warn("📦 [CATALOG] Không đọc được products, dùng danh sách mặc định")
		return Defaults()
	}
	if c == nil {
		return Defaults()
	}
	return c
}

// Save ghi đè toàn bộ danh sách sản phẩm
func (s *Service) Save(c Catalog) error {
	return s.store.Save(store.RecordProducts, c)
}

// Add thêm hoặc ghi đè một sản phẩm và persist ngay
func (s *Service) Add(name string, price float64) error {
	c := s.Load()
	c[name] = price
	if err := s.Save(c); err != nil {
		return err
	}
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"product": name,
		"price":   price,
	}).Info("📦 [CATALOG] Đã thêm sản phẩm")
	return nil
}

// Edit cập nhật giá một sản phẩm đã tồn tại, trả về giá cũ.
// Sản phẩm không tồn tại thì trả về ErrNotFound.
func (s *Service) Edit(name string, price float64) (oldPrice float64, err error) {
	c := s.Load()
	oldPrice, ok := c[name]
	if !ok {
		return 0, fmt.Errorf("product %q: %w", name, common.ErrNotFound)
	}
	c[name] = price
	if err := s.Save(c); err != nil {
		return 0, err
	}
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"product":  name,
		"oldPrice": oldPrice,
		"newPrice": price,
	}).Info("📦 [CATALOG] Đã cập nhật giá sản phẩm")
	return oldPrice, nil
}

// Delete xóa một sản phẩm.
// Sản phẩm không tồn tại thì trả về ErrNotFound — caller báo "không tìm thấy", không phải lỗi hệ thống.
func (s *Service) Delete(name string) error {
	c := s.Load()
	if _, ok := c[name]; !ok {
		return fmt.Errorf("product %q: %w", name, common.ErrNotFound)
	}
	delete(c, name)
	if err := s.Save(c); err != nil {
		return err
	}
	logger.GetAppLogger().WithField("product", name).Info("📦 [CATALOG] Đã xóa sản phẩm")
	return nil
}

// Get trả về giá của một sản phẩm
func (s *Service) Get(name string) (price float64, ok bool) {
	c := s.Load()
	price, ok = c[name]
	return price, ok
}

// Reset ghi đè danh sách sản phẩm về mặc định
func (s *Service) Reset() error {
	return s.Save(Defaults())
}
