package auth

import (
	"fmt"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/store"
)

// Service xử lý kiểm tra quyền và quản lý danh sách người dùng.
// Mọi kiểm tra đều load record mới từ store — không cache, nên thu hồi quyền
// có hiệu lực ngay từ lần kiểm tra kế tiếp.
type Service struct {
	store    *store.FileStore
	adminIDs []int64 // Admin mặc định từ cấu hình deployment, dùng khi chưa có file users
}

// NewService tạo mới auth service
func NewService(st *store.FileStore, adminIDs []int64) *Service {
	return &Service{store: st, adminIDs: adminIDs}
}

// Load đọc danh sách người dùng từ store.
// File thiếu hoặc hỏng thì trả về danh sách mặc định (admin từ cấu hình), không bao giờ fatal.
func (s *Service) Load() UserList {
	var users UserList
	if err := s.store.Load(store.RecordUsers, &users); err != nil {
		logger.GetAppLogger().WithError(err).Warn("👥 [AUTH] Không đọc được users, dùng danh sách admin từ cấu hình")
		return Defaults(s.adminIDs)
	}
	return users
}

// Save ghi đè toàn bộ danh sách người dùng
func (s *Service) Save(users UserList) error {
	return s.store.Save(store.RecordUsers, users)
}

// IsAllowed kiểm tra chat id có được phép dùng bot không.
// Load mới mỗi lần gọi — thay đổi danh sách có hiệu lực ngay.
func (s *Service) IsAllowed(id int64) bool {
	return s.Load().IsAllowed(id)
}

// IsAdmin kiểm tra chat id có phải admin không
func (s *Service) IsAdmin(id int64) bool {
	return s.Load().IsAdmin(id)
}

// AddUser thêm một chat id vào danh sách allowed.
// Đã có trong danh sách thì trả về ErrAlreadyExists.
func (s *Service) AddUser(id int64) error {
	users := s.Load()
	if contains(users.Allowed, id) {
		return fmt.Errorf("user %d: %w", id, common.ErrAlreadyExists)
	}
	users.Allowed = append(users.Allowed, id)
	if err := s.Save(users); err != nil {
		return err
	}
	logger.GetAppLogger().WithField("userId", id).Info("👥 [AUTH] Đã thêm người dùng")
	return nil
}

// RemoveUser xóa một chat id khỏi danh sách allowed.
// Chat id đang là admin thì từ chối cứng (ErrIsAdmin) và danh sách giữ nguyên;
// không có trong danh sách thì trả về ErrNotFound.
func (s *Service) RemoveUser(id int64) error {
	users := s.Load()
	if contains(users.Admins, id) {
		return fmt.Errorf("user %d: %w", id, common.ErrIsAdmin)
	}
	if !contains(users.Allowed, id) {
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}

	filtered := users.Allowed[:0]
	for _, v := range users.Allowed {
		if v != id {
			filtered = append(filtered, v)
		}
	}
	users.Allowed = filtered

	if err := s.Save(users); err != nil {
		return err
	}
	logger.GetAppLogger().WithField("userId", id).Info("👥 [AUTH] Đã xóa người dùng")
	return nil
}
