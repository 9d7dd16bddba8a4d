package pricing

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
)

func TestRender_ContainsHeaderAndProducts(t *testing.T) {
	c := catalog.Catalog{"R6 II BODY": 1610}
	cfg := settings.Defaults()
	quotes, err := Quote(c, cfg, 58500)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	out := Render(quotes, cfg, 58500, now)

	if !strings.Contains(out, "58,500") {
		t.Error("output phải chứa tỷ giá đã format")
	}
	if !strings.Contains(out, "R6 II BODY") {
		t.Error("output phải chứa tên sản phẩm")
	}
	if !strings.Contains(out, "2026-08-30 12:00") {
		t.Error("output phải chứa timestamp")
	}
}

func TestRenderChunks_RespectsLimit(t *testing.T) {
	// Catalog đủ lớn để chắc chắn vượt 4000 ký tự
	c := catalog.Catalog{}
	for i := 0; i < 200; i++ {
		c[fmt.Sprintf("PRODUCT MODEL %03d", i)] = float64(1000 + i)
	}
	cfg := settings.Defaults()
	quotes, err := Quote(c, cfg, 58500)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}

	now := time.Now()
	chunks := RenderChunks(quotes, cfg, 58500, now)
	if len(chunks) < 2 {
		t.Fatalf("bảng giá 200 sản phẩm phải bị cắt thành nhiều message, nhận được %d", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > MaxMessageRunes {
			t.Errorf("chunk %d dài %d rune, vượt giới hạn %d", i, n, MaxMessageRunes)
		}
	}

	// Ghép lại phải bằng output gốc — không mất ký tự nào khi cắt
	if strings.Join(chunks, "") != Render(quotes, cfg, 58500, now) {
		t.Error("ghép các chunk lại phải bằng output gốc")
	}
}
