package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
	"github.com/amirsalamaty/camera-pricer-bot/internal/utility"
)

// MaxMessageRunes là độ dài tối đa của một message gửi qua Telegram.
// Bảng giá dài hơn sẽ được cắt thành nhiều message liên tiếp.
const MaxMessageRunes = 4000

// Render dựng bảng giá dạng text (Markdown) từ kết quả Quote.
// Format giữ nguyên layout quen thuộc với người dùng: header tỷ giá,
// mỗi sản phẩm một khối với các mức phần trăm, footer timestamp.
func Render(quotes []ProductQuote, cfg settings.Settings, rate float64, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *نرخ تبدیل:* `%s` تومان\n", utility.FormatThousands(rate))
	fmt.Fprintf(&b, "💵 *نرخ درهم:* `%s`\n", utility.FormatFloat(cfg.DirhamRate))
	b.WriteString(strings.Repeat("━", 25) + "\n\n")

	for _, q := range quotes {
		fmt.Fprintf(&b, "🔹 *%s* @$%s\n", q.Name, utility.FormatThousands(q.BasePrice))
		for _, tier := range q.Tiers {
			fmt.Fprintf(&b, "    +%d%% → `%s`\n", int(tier.Percent*100), utility.FormatThousands(tier.Price))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("━", 25) + "\n")
	fmt.Fprintf(&b, "⏰ %s", now.Format("2006-01-02 15:04"))

	return b.String()
}

// RenderChunks dựng bảng giá và cắt thành các message tối đa MaxMessageRunes ký tự
func RenderChunks(quotes []ProductQuote, cfg settings.Settings, rate float64, now time.Time) []string {
	return utility.ChunkText(Render(quotes, cfg, rate, now), MaxMessageRunes)
}
