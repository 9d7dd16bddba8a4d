// Package pricing - Test công thức tính giá và quy tắc làm tròn.
package pricing

import (
	"errors"
	"sort"
	"testing"

	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
)

func TestQuote_Formula(t *testing.T) {
	// base=100, dirham=3.67, rate=58500, markup=20,000,000
	// → 100×3.67×58500 + 20,000,000 = 41,469,500
	// → +3% = 42,713,585 → làm tròn hàng triệu = 43,000,000
	c := catalog.Catalog{"TEST BODY": 100}
	cfg := settings.Settings{
		DirhamRate:  3.67,
		BaseMarkup:  20000000,
		Percentages: []float64{0.03, 0.10},
		RoundTo:     -6,
	}

	quotes, err := Quote(c, cfg, 58500)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("Quote phải trả về 1 sản phẩm, nhận được %d", len(quotes))
	}

	q := quotes[0]
	if q.Name != "TEST BODY" || q.BasePrice != 100 {
		t.Errorf("quote sai sản phẩm: %+v", q)
	}
	if len(q.Tiers) != 2 {
		t.Fatalf("phải có 2 mức giá, nhận được %d", len(q.Tiers))
	}
	if q.Tiers[0].Price != 43000000 {
		t.Errorf("mức +3%% phải là 43,000,000, nhận được %v", q.Tiers[0].Price)
	}
	// 41,469,500 × 1.10 = 45,616,450 → 46,000,000
	if q.Tiers[1].Price != 46000000 {
		t.Errorf("mức +10%% phải là 46,000,000, nhận được %v", q.Tiers[1].Price)
	}
}

func TestQuote_EmptyCatalog(t *testing.T) {
	_, err := Quote(catalog.Catalog{}, settings.Defaults(), 58500)
	if !errors.Is(err, common.ErrEmptyCatalog) {
		t.Errorf("catalog rỗng phải trả về ErrEmptyCatalog, nhận được %v", err)
	}
}

func TestQuote_StableOrder(t *testing.T) {
	c := catalog.Catalog{"Z": 1, "A": 2, "M": 3}
	quotes, err := Quote(c, settings.Defaults(), 1000)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}

	var names []string
	for _, q := range quotes {
		names = append(names, q.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("sản phẩm phải theo thứ tự tên ổn định, nhận được %v", names)
	}

	// Cùng input phải cho cùng output
	again, _ := Quote(c, settings.Defaults(), 1000)
	for i := range quotes {
		if quotes[i].Name != again[i].Name || quotes[i].Tiers[0].Price != again[i].Tiers[0].Price {
			t.Fatal("Quote không deterministic với cùng input")
		}
	}
}

func TestQuote_TierCountMatchesPercentages(t *testing.T) {
	cfg := settings.Defaults()
	quotes, err := Quote(catalog.Defaults(), cfg, 58500)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}
	for _, q := range quotes {
		if len(q.Tiers) != len(cfg.Percentages) {
			t.Errorf("sản phẩm %q có %d mức giá, phải là %d", q.Name, len(q.Tiers), len(cfg.Percentages))
		}
	}
}

func TestQuote_ZeroRateAllowed(t *testing.T) {
	// Rate 0 là hợp lệ: giá chỉ còn markup
	c := catalog.Catalog{"X": 100}
	cfg := settings.Settings{DirhamRate: 3.67, BaseMarkup: 20000000, Percentages: []float64{0}, RoundTo: -6}
	quotes, err := Quote(c, cfg, 0)
	if err != nil {
		t.Fatalf("rate=0 không được trả về lỗi: %v", err)
	}
	if quotes[0].Tiers[0].Price != 20000000 {
		t.Errorf("với rate=0 giá phải bằng markup, nhận được %v", quotes[0].Tiers[0].Price)
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		v      float64
		digits int
		want   float64
	}{
		{1500000, -6, 2000000}, // half away from zero
		{2499999, -6, 2000000},
		{2500000, -6, 3000000},
		{42713585, -6, 43000000},
		{1234.5678, 2, 1234.57},
		{1234.5678, 0, 1235},
		{-1500000, -6, -2000000},
	}
	for _, tc := range cases {
		if got := RoundTo(tc.v, tc.digits); got != tc.want {
			t.Errorf("RoundTo(%v, %d) = %v, phải là %v", tc.v, tc.digits, got, tc.want)
		}
	}
}
