// Package settings - Test cài đặt tính giá và giá trị mặc định.
package settings

import (
	"testing"

	"github.com/amirsalamaty/camera-pricer-bot/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore trả về lỗi: %v", err)
	}
	return NewService(st)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.DirhamRate != 3.67 {
		t.Errorf("DirhamRate mặc định phải là 3.67, nhận được %v", cfg.DirhamRate)
	}
	if cfg.BaseMarkup != 20000000 {
		t.Errorf("BaseMarkup mặc định phải là 20,000,000, nhận được %v", cfg.BaseMarkup)
	}
	want := []float64{0.03, 0.04, 0.05, 0.06, 0.10}
	if len(cfg.Percentages) != len(want) {
		t.Fatalf("Percentages mặc định phải có %d phần tử, nhận được %d", len(want), len(cfg.Percentages))
	}
	for i := range want {
		if cfg.Percentages[i] != want[i] {
			t.Errorf("Percentages[%d] = %v, phải là %v", i, cfg.Percentages[i], want[i])
		}
	}
	if cfg.RoundTo != -6 {
		t.Errorf("RoundTo mặc định phải là -6, nhận được %v", cfg.RoundTo)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	svc := newTestService(t)

	cfg := svc.Load()
	if cfg.DirhamRate != 3.67 || cfg.RoundTo != -6 {
		t.Errorf("thiếu file phải fallback về cài đặt mặc định, nhận được %+v", cfg)
	}
}

func TestSetDirhamRate_Persists(t *testing.T) {
	svc := newTestService(t)

	if err := svc.SetDirhamRate(3.70); err != nil {
		t.Fatalf("SetDirhamRate trả về lỗi: %v", err)
	}
	if got := svc.Load().DirhamRate; got != 3.70 {
		t.Errorf("DirhamRate sau khi set phải là 3.70, nhận được %v", got)
	}

	// Các trường khác phải giữ nguyên
	if got := svc.Load().BaseMarkup; got != 20000000 {
		t.Errorf("SetDirhamRate không được đụng đến BaseMarkup, nhận được %v", got)
	}
}

func TestSetPercentages_Persists(t *testing.T) {
	svc := newTestService(t)

	if err := svc.SetPercentages([]float64{0.02, 0.08}); err != nil {
		t.Fatalf("SetPercentages trả về lỗi: %v", err)
	}
	got := svc.Load().Percentages
	if len(got) != 2 || got[0] != 0.02 || got[1] != 0.08 {
		t.Errorf("Percentages sau khi set phải là [0.02 0.08], nhận được %v", got)
	}
}

func TestReset(t *testing.T) {
	svc := newTestService(t)

	if err := svc.SetBaseMarkup(99); err != nil {
		t.Fatalf("SetBaseMarkup trả về lỗi: %v", err)
	}
	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset trả về lỗi: %v", err)
	}
	if got := svc.Load().BaseMarkup; got != 20000000 {
		t.Errorf("Reset phải đưa BaseMarkup về mặc định, nhận được %v", got)
	}
}
