package auth

// UserList chứa hai danh sách chat id: người dùng được phép và admin.
// Admin mặc nhiên cũng là người dùng được phép.
// JSON shape giữ nguyên format file users.json đang chạy production.
type UserList struct {
	Allowed []int64 `json:"allowed"` // Được dùng các thao tác đọc/tính giá
	Admins  []int64 `json:"admins"`  // Được mutate catalog/settings và quản lý danh sách allowed
}

// Defaults trả về danh sách người dùng mặc định: admin từ cấu hình deployment
// nằm trong cả hai danh sách. Slice được copy để caller mutate không ảnh hưởng cấu hình.
func Defaults(adminIDs []int64) UserList {
	allowed := make([]int64, len(adminIDs))
	copy(allowed, adminIDs)
	admins := make([]int64, len(adminIDs))
	copy(admins, adminIDs)
	return UserList{Allowed: allowed, Admins: admins}
}

// IsAllowed kiểm tra chat id có trong allowed hoặc admins không
func (u UserList) IsAllowed(id int64) bool {
	return contains(u.Allowed, id) || contains(u.Admins, id)
}

// IsAdmin kiểm tra chat id có trong admins không
func (u UserList) IsAdmin(id int64) bool {
	return contains(u.Admins, id)
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
