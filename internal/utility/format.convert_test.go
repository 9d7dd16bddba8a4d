// Package utility - Test parse/format số.
package utility

import (
	"errors"
	"testing"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"58500", 58500, true},
		{"58,500", 58500, true},
		{"  3.67  ", 3.67, true},
		{"1,234,567", 1234567, true},
		{"-5", -5, true},
		{"abc", 0, false},
		{"12x", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseNumber(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseNumber(%q) trả về lỗi: %v", tc.in, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseNumber(%q) = %v, phải là %v", tc.in, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, common.ErrNotNumeric) {
			t.Errorf("ParseNumber(%q) phải trả về ErrNotNumeric, nhận được %v", tc.in, err)
		}
	}
}

func TestParsePercentList(t *testing.T) {
	got, err := ParsePercentList("3, 4, 5%, 6 , 10")
	if err != nil {
		t.Fatalf("ParsePercentList trả về lỗi: %v", err)
	}
	want := []float64{0.03, 0.04, 0.05, 0.06, 0.10}
	if len(got) != len(want) {
		t.Fatalf("ParsePercentList trả về %d phần tử, phải là %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phần tử %d = %v, phải là %v", i, got[i], want[i])
		}
	}
}

func TestParsePercentList_RejectsWholeListOnBadItem(t *testing.T) {
	if _, err := ParsePercentList("3, x, 5"); !errors.Is(err, common.ErrNotNumeric) {
		t.Errorf("một phần tử sai phải làm toàn bộ danh sách bị từ chối, nhận được %v", err)
	}
}

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{43000000, "43,000,000"},
		{1234, "1,234"},
		{123, "123"},
		{0, "0"},
		{-1234567, "-1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatThousands(tc.in); got != tc.want {
			t.Errorf("FormatThousands(%v) = %q, phải là %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3.67, "3.67"},
		{5, "5"},
		{0.05, "0.05"},
	}
	for _, tc := range cases {
		if got := FormatFloat(tc.in); got != tc.want {
			t.Errorf("FormatFloat(%v) = %q, phải là %q", tc.in, got, tc.want)
		}
	}
}
