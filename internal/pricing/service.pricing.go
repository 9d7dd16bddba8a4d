// Package pricing tính bảng giá bán từ catalog, cài đặt và tỷ giá do requester cung cấp.
// Tính toán là pure function — cùng input luôn cho cùng output, không có state ẩn.
package pricing

import (
	"fmt"
	"math"

	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
)

// TierPrice là một mức giá theo phần trăm markup
type TierPrice struct {
	Percent float64 // Phần trăm (0.03 = +3%)
	Price   float64 // Giá đã làm tròn
}

// ProductQuote là bảng giá của một sản phẩm
type ProductQuote struct {
	Name      string
	BasePrice float64 // Giá gốc USD
	Tiers     []TierPrice
}

// Quote tính bảng giá cho toàn bộ catalog với tỷ giá rate.
//
// Công thức cho mỗi sản phẩm:
//
//	price = base_price × dirham_rate × rate + base_markup
//	tier  = roundTo(price × (1 + percent), round_to)
//
// Sản phẩm theo thứ tự hiển thị ổn định của catalog, phần trăm theo thứ tự cài đặt.
// Catalog rỗng trả về ErrEmptyCatalog — kết quả rỗng tường minh, không phải bảng rỗng.
// Rate bằng 0 hoặc âm vẫn được chấp nhận (chỉ ra giá markup-only) — đây là
// chủ đích, không phải bug.
func Quote(c catalog.Catalog, cfg settings.Settings, rate float64) ([]ProductQuote, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("catalog: %w", common.ErrEmptyCatalog)
	}

	quotes := make([]ProductQuote, 0, len(c))
	for _, name := range c.Names() {
		basePrice := c[name]
		price := basePrice*cfg.DirhamRate*rate + cfg.BaseMarkup

		tiers := make([]TierPrice, 0, len(cfg.Percentages))
		for _, pct := range cfg.Percentages {
			tiers = append(tiers, TierPrice{
				Percent: pct,
				Price:   RoundTo(price*(1+pct), cfg.RoundTo),
			})
		}

		quotes = append(quotes, ProductQuote{
			Name:      name,
			BasePrice: basePrice,
			Tiers:     tiers,
		})
	}

	return quotes, nil
}

// RoundTo làm tròn v đến digits chữ số thập phân.
// digits âm làm tròn đến lũy thừa 10 (digits=-6 → làm tròn đến hàng triệu).
// Quy tắc: half away from zero (1,500,000 với digits=-6 → 2,000,000) —
// nhất quán trên toàn bộ output, được pin trong test.
func RoundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
