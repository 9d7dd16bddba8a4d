package catalog

import "sort"

// Catalog ánh xạ tên sản phẩm sang giá gốc (USD)
type Catalog map[string]float64

// Defaults trả về danh sách sản phẩm mặc định.
// Mỗi lần gọi trả về một bản copy mới — caller mutate thoải mái không ảnh hưởng default.
func Defaults() Catalog {
	return Catalog{
		"R6 II BODY": 1610,
		"R7 18-150":  1190,
		"RP 24-105":  860,
		"R10 18-150": 960,
		"R8 24-50":   1080,
		"R50 18-45":  600,
		"A7 M4 BODY": 1650,
		"A7iii Body": 1050,
		"6400 16-50": 710,
	}
}

// Names trả về tên sản phẩm theo thứ tự hiển thị ổn định (alphabet).
// JSON object không giữ thứ tự nên sort theo tên để output lặp lại được.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
