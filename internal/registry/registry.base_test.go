package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil || !isNew {
		t.Fatalf("Register lần đầu phải là item mới, nhận được isNew=%v err=%v", isNew, err)
	}

	isNew, err = r.Register("a", 2)
	if err != nil || isNew {
		t.Fatalf("Register trùng tên phải ghi đè, nhận được isNew=%v err=%v", isNew, err)
	}

	if v, ok := r.Get("a"); !ok || v != 2 {
		t.Errorf("Get phải trả về item đã ghi đè, nhận được %v (ok=%v)", v, ok)
	}
	if _, ok := r.Get("b"); ok {
		t.Error("Get tên chưa đăng ký phải trả về exists=false")
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("tên rỗng phải trả về ErrRequiredField, nhận được %v", err)
	}
}

func TestGetOrCreate_CreatesOnce(t *testing.T) {
	r := NewRegistry[*sync.Mutex]()

	created := 0
	creator := func() (*sync.Mutex, error) {
		created++
		return &sync.Mutex{}, nil
	}

	first, err := r.GetOrCreate("products", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả về lỗi: %v", err)
	}
	second, err := r.GetOrCreate("products", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lần hai trả về lỗi: %v", err)
	}

	if created != 1 {
		t.Errorf("creator phải chạy đúng một lần, đã chạy %d lần", created)
	}
	if first != second {
		t.Error("GetOrCreate cùng tên phải trả về cùng một instance")
	}
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	r := NewRegistry[*sync.Mutex]()

	var wg sync.WaitGroup
	results := make([]*sync.Mutex, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := r.GetOrCreate("shared", func() (*sync.Mutex, error) {
				return &sync.Mutex{}, nil
			})
			if err != nil {
				t.Errorf("GetOrCreate trả về lỗi: %v", err)
				return
			}
			results[i] = m
		}(i)
	}
	wg.Wait()

	for i := 1; i < 10; i++ {
		if results[i] != results[0] {
			t.Fatal("mọi goroutine phải nhận cùng một instance")
		}
	}
}
