package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{"12.344", 1234, true},
		{"12.345", 1235, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyDivideBy(t *testing.T) {
	cases := []struct {
		cents int64
		n     int
		want  int64
	}{
		{13394, 3, 4465}, // 44.6466 rounds half-up to 44.65
		{3000, 1, 3000},
		{100, 3, 33},
		{0, 5, 0},
		{500, 0, 0}, // division-by-zero guard
		{500, -1, 0},
	}
	for _, tc := range cases {
		got := Money{Cents: tc.cents}.DivideBy(tc.n)
		if got.Cents != tc.want {
			t.Fatalf("%d / %d = %d cents, want %d", tc.cents, tc.n, got.Cents, tc.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{13394, "133.94"},
		{100, "1.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("%d cents = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
