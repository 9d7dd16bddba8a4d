package global

import "testing"

func TestValidateChatIDs(t *testing.T) {
	InitValidator()

	type form struct {
		IDs string `validate:"chat_ids"`
	}

	cases := []struct {
		in string
		ok bool
	}{
		{"", true}, // rỗng hợp lệ — bot chạy không có admin mặc định
		{"123456789", true},
		{"123, 456 ,789", true},
		{"abc", false},
		{"123,abc", false},
	}
	for _, tc := range cases {
		err := Validate.Struct(form{IDs: tc.in})
		if tc.ok && err != nil {
			t.Errorf("chat_ids %q phải hợp lệ, nhận được %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("chat_ids %q phải bị từ chối", tc.in)
		}
	}
}

func TestValidateNumericText(t *testing.T) {
	InitValidator()

	type form struct {
		Value string `validate:"numeric_text"`
	}

	cases := []struct {
		in string
		ok bool
	}{
		{"58500", true},
		{"58,500", true},
		{"3.67", true},
		{"", false},
		{"abc", false},
	}
	for _, tc := range cases {
		err := Validate.Struct(form{Value: tc.in})
		if tc.ok && err != nil {
			t.Errorf("numeric_text %q phải hợp lệ, nhận được %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("numeric_text %q phải bị từ chối", tc.in)
		}
	}
}
