// Package session giữ trạng thái hội thoại đang chờ của từng requester:
// "bot đang chờ gì từ người này" giữa hai message liên tiếp.
// Trạng thái chỉ nằm trong memory — mất khi restart, đó là hành vi chủ đích.
package session

import "sync"

// Step là loại thao tác đang chờ input
type Step int

const (
	StepNone               Step = iota // Không chờ gì (idle)
	StepWaitingRate                    // Chờ nhận tỷ giá đô la để tính giá
	StepAddingProduct                  // Chờ "tên | giá" để thêm sản phẩm
	StepEditingProduct                 // Chờ giá mới cho sản phẩm trong PendingOp.Product
	StepSettingDirham                  // Chờ tỷ giá dirham mới
	StepSettingMarkup                  // Chờ markup cơ bản mới
	StepSettingPercentages             // Chờ danh sách phần trăm mới
)

// PendingOp là thao tác đang chờ của một requester.
// Step nào cần tham số thì tham số nằm ngay trong struct (Product cho edit) —
// không encode vào string tag.
type PendingOp struct {
	Step    Step
	Product string // Tên sản phẩm đang được edit (chỉ dùng với StepEditingProduct)
}

// Store là session store keyed theo chat id, thread-safe.
// Inject vào handler thay vì dùng biến toàn cục để test được không cần transport.
type Store struct {
	mu sync.Mutex
	m  map[int64]PendingOp
}

// NewStore tạo mới session store
func NewStore() *Store {
	return &Store{m: make(map[int64]PendingOp)}
}

// Get trả về thao tác đang chờ của một chat id (StepNone nếu không có)
func (s *Store) Get(chatID int64) PendingOp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[chatID]
}

// Set ghi nhận thao tác đang chờ của một chat id
func (s *Store) Set(chatID int64, op PendingOp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = op
}

// Clear xóa thao tác đang chờ của một chat id (về idle)
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
