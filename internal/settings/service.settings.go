package settings

import (
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/store"
)

// Service xử lý đọc/ghi cài đặt tính giá
type Service struct {
	store *store.FileStore
}

// NewService tạo mới settings service
func NewService(st *store.FileStore) *Service {
	return &Service{store: st}
}

// Load đọc cài đặt từ store.
// File thiếu hoặc hỏng thì trả về cài đặt mặc định (đã log), không bao giờ fatal.
func (s *Service) Load() Settings {
	var cfg Settings
	if err := s.store.Load(store.RecordSettings, &cfg); err != nil {
		logger.GetAppLogger().WithError(err).Warn("⚙️ [SETTINGS] Không đọc được settings, dùng cài đặt mặc định")
		return Defaults()
	}
	if len(cfg.Percentages) == 0 {
		cfg.Percentages = Defaults().Percentages
	}
	return cfg
}

// Save ghi đè toàn bộ cài đặt
func (s *Service) Save(cfg Settings) error {
	return s.store.Save(store.RecordSettings, cfg)
}

// SetDirhamRate cập nhật tỷ giá dirham và persist ngay
func (s *Service) SetDirhamRate(rate float64) error {
	cfg := s.Load()
	cfg.DirhamRate = rate
	if err := s.Save(cfg); err != nil {
		return err
	}
	logger.GetAppLogger().WithField("dirhamRate", rate).Info("⚙️ [SETTINGS] Đã cập nhật tỷ giá dirham")
	return nil
}

// SetBaseMarkup cập nhật markup cơ bản và persist ngay
func (s *Service) SetBaseMarkup(markup float64) error {
	cfg := s.Load()
	cfg.BaseMarkup = markup
	if err := s.Save(cfg); err != nil {
		return err
	}
	logger.GetAppLogger().WithField("baseMarkup", markup).Info("⚙️ [SETTINGS] Đã cập nhật markup cơ bản")
	return nil
}

// SetPercentages thay toàn bộ danh sách phần trăm (đã được parse và chia 100) và persist ngay
func (s *Service) SetPercentages(percentages []float64) error {
	cfg := s.Load()
	cfg.Percentages = percentages
	if err := s.Save(cfg); err != nil {
		return err
	}
	logger.GetAppLogger().WithField("percentages", percentages).Info("⚙️ [SETTINGS] Đã cập nhật danh sách phần trăm")
	return nil
}

// Reset ghi đè cài đặt về mặc định
func (s *Service) Reset() error {
	return s.Save(Defaults())
}
