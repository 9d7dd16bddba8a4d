package config

import "testing"

func TestAdminIDs(t *testing.T) {
	cfg := &Configuration{TelegramChatIDs: "111, 222,333"}
	ids := cfg.AdminIDs()
	if len(ids) != 3 || ids[0] != 111 || ids[1] != 222 || ids[2] != 333 {
		t.Errorf("AdminIDs parse sai: %v", ids)
	}
}

func TestAdminIDs_SkipsInvalidEntries(t *testing.T) {
	cfg := &Configuration{TelegramChatIDs: "111, abc, , 222"}
	ids := cfg.AdminIDs()
	if len(ids) != 2 || ids[0] != 111 || ids[1] != 222 {
		t.Errorf("phần tử không hợp lệ phải bị bỏ qua, nhận được %v", ids)
	}
}

func TestAdminIDs_Empty(t *testing.T) {
	cfg := &Configuration{}
	if ids := cfg.AdminIDs(); len(ids) != 0 {
		t.Errorf("chuỗi rỗng phải trả về danh sách rỗng, nhận được %v", ids)
	}
}
