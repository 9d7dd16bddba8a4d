// Package catalog - Test CRUD danh sách sản phẩm qua file store.
package catalog

import (
	"errors"
	"sort"
	"testing"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
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

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	svc := newTestService(t)

	c := svc.Load()
	if len(c) != len(Defaults()) {
		t.Errorf("thiếu file phải fallback về danh sách mặc định (%d sản phẩm), nhận được %d", len(Defaults()), len(c))
	}
	if c["R6 II BODY"] != 1610 {
		t.Errorf("giá mặc định của R6 II BODY phải là 1610, nhận được %v", c["R6 II BODY"])
	}
}

func TestAddGetDelete(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Add("R5 BODY", 2500); err != nil {
		t.Fatalf("Add trả về lỗi: %v", err)
	}
	price, ok := svc.Get("R5 BODY")
	if !ok || price != 2500 {
		t.Errorf("Get sau Add phải trả về 2500, nhận được %v (ok=%v)", price, ok)
	}

	if err := svc.Delete("R5 BODY"); err != nil {
		t.Fatalf("Delete trả về lỗi: %v", err)
	}
	if _, ok := svc.Get("R5 BODY"); ok {
		t.Error("sản phẩm đã xóa không được còn trong danh sách")
	}
}

func TestAdd_OverwritesExisting(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Add("X", 100); err != nil {
		t.Fatalf("Add trả về lỗi: %v", err)
	}
	if err := svc.Add("X", 200); err != nil {
		t.Fatalf("Add lần hai trả về lỗi: %v", err)
	}
	if price, _ := svc.Get("X"); price != 200 {
		t.Errorf("Add trùng tên phải ghi đè giá, nhận được %v", price)
	}
}

func TestEdit(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Add("X", 100); err != nil {
		t.Fatalf("Add trả về lỗi: %v", err)
	}
	oldPrice, err := svc.Edit("X", 150)
	if err != nil {
		t.Fatalf("Edit trả về lỗi: %v", err)
	}
	if oldPrice != 100 {
		t.Errorf("Edit phải trả về giá cũ 100, nhận được %v", oldPrice)
	}
	if price, _ := svc.Get("X"); price != 150 {
		t.Errorf("giá sau Edit phải là 150, nhận được %v", price)
	}
}

func TestEditDelete_NotFound(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Edit("KHÔNG TỒN TẠI", 100); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Edit sản phẩm không tồn tại phải trả về ErrNotFound, nhận được %v", err)
	}
	if err := svc.Delete("KHÔNG TỒN TẠI"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Delete sản phẩm không tồn tại phải trả về ErrNotFound, nhận được %v", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	c := Catalog{"Z": 1, "A": 2, "M": 3}
	names := c.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names phải trả về thứ tự ổn định theo tên, nhận được %v", names)
	}
	if len(names) != 3 {
		t.Errorf("Names phải trả về đủ %d tên, nhận được %d", 3, len(names))
	}
}
