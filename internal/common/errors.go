package common

import "errors"

// Các sentinel error dùng chung giữa các package.
// Handler so sánh bằng errors.Is để chọn message trả về cho người dùng.
var (
	ErrNotFound       = errors.New("không tìm thấy tài nguyên")       // Record / sản phẩm / người dùng không tồn tại
	ErrRequiredField  = errors.New("thiếu trường bắt buộc")           // Thiếu dữ liệu đầu vào
	ErrNotNumeric     = errors.New("giá trị không phải là số")        // Input không parse được thành số
	ErrAlreadyExists  = errors.New("dữ liệu đã tồn tại")              // Thêm trùng
	ErrIsAdmin        = errors.New("không thể xóa admin")             // Xóa người dùng đang là admin — từ chối cứng
	ErrEmptyCatalog   = errors.New("danh sách sản phẩm rỗng")         // Không có sản phẩm nào để tính giá
	ErrStorageFailure = errors.New("lỗi ghi dữ liệu")                 // Save thất bại — báo cho người dùng, không im lặng
)
