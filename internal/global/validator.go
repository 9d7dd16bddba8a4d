package global

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("chat_ids", validateChatIDs)
	_ = Validate.RegisterValidation("numeric_text", validateNumericText)
}

// validateChatIDs kiểm tra format danh sách chat id phân cách bằng dấu phẩy.
// Chuỗi rỗng hợp lệ (bot chạy không có admin mặc định — chỉ cảnh báo lúc init).
func validateChatIDs(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := strconv.ParseInt(part, 10, 64); err != nil {
			return false
		}
	}
	return true
}

// validateNumericText kiểm tra chuỗi có parse được thành số hay không,
// chấp nhận dấu phẩy phân cách hàng nghìn
func validateNumericText(fl validator.FieldLevel) bool {
	value := strings.ReplaceAll(strings.TrimSpace(fl.Field().String()), ",", "")
	if value == "" {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
