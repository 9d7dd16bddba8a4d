package utility

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
)

// ParseNumber parse một chuỗi thành số, chấp nhận dấu phẩy phân cách hàng nghìn
// (ví dụ: "58,500" → 58500). Chuỗi chứa ký tự không phải số sẽ bị từ chối.
func ParseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty input: %w", common.ErrNotNumeric)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, common.ErrNotNumeric)
	}
	return v, nil
}

// ParsePercentList parse danh sách phần trăm phân cách bằng dấu phẩy.
// Mỗi phần tử có thể có hậu tố "%" và được chia cho 100
// (ví dụ: "3, 4, 5%" → [0.03, 0.04, 0.05]).
// Bất kỳ phần tử nào không phải số thì toàn bộ danh sách bị từ chối.
func ParsePercentList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	percentages := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSuffix(strings.TrimSpace(part), "%")
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, common.ErrNotNumeric)
		}
		percentages = append(percentages, v/100)
	}
	return percentages, nil
}

// FormatThousands format một số thành chuỗi có dấu phẩy phân cách hàng nghìn,
// không có phần thập phân (ví dụ: 43000000 → "43,000,000").
func FormatThousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 0, 64)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatFloat format một số thực, bỏ các số 0 thừa ở cuối (3.670 → "3.67", 5.0 → "5").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
