package settings

// Settings chứa các tham số của công thức tính giá.
// JSON shape giữ nguyên format file settings.json đang chạy production.
type Settings struct {
	DirhamRate  float64   `json:"dirham_rate"`  // Tỷ giá dirham (nhân vào giá USD)
	BaseMarkup  float64   `json:"base_markup"`  // Markup cộng thêm sau khi nhân tỷ giá (toman)
	Percentages []float64 `json:"percentages"`  // Các mức phần trăm (0.03 = +3%), thứ tự là thứ tự hiển thị
	RoundTo     int       `json:"round_to"`     // Số chữ số thập phân để làm tròn; âm = làm tròn đến lũy thừa 10 (-6 = triệu)
}

// Defaults trả về cài đặt mặc định
func Defaults() Settings {
	return Settings{
		DirhamRate:  3.67,
		BaseMarkup:  20000000,
		Percentages: []float64{0.03, 0.04, 0.05, 0.06, 0.10},
		RoundTo:     -6,
	}
}
