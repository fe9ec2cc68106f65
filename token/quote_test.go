package token

import (
	"testing"
	"time"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in, name, str string
	}{
		{"abc", "abc", "abc"},
		{"a_1", "a_1", "a_1"},
		{"", "``", `""`},
		{"a b", "`a b`", `"a b"`},
		{"a`b", "`a\\`b`", "\"a`b\""},
		{`a\b`, "`a\\\\b`", `"a\\b"`},
		{"a\"b\n", "`a\"b\n`", `"a\"b\n"`},
		{"0123", "0123", `"0123"`},
		{"1e5", "1e5", `"1e5"`},
		{"1a", "1a", "1a"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Name(tc.in); got != tc.name {
				t.Errorf("Name: got %q want %q", got, tc.name)
			}
			if got := String(tc.in); got != tc.str {
				t.Errorf("String: got %q want %q", got, tc.str)
			}
			// both forms read back.
			for _, q := range []string{QuoteName(tc.in), QuoteString(tc.in)} {
				v, n, err := unquote([]byte(q[1:]), q[0])
				if err != nil || v != tc.in || n != len(q)-1 {
					t.Errorf("unquote %s: %q %d %v", q, v, n, err)
				}
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	for v, want := range map[string]bool{
		"0": true, "12": true, "-1": true, "1.5": true, "1e9": true, "2.5E-3": true,
		"": false, "-": false, "1.": false, ".5": false, "1e": false, "0x10": false, "1 ": false,
	} {
		if got := IsNumber(v); got != want {
			t.Errorf("%q: got %t", v, got)
		}
	}
}

func TestDates(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-02", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T10:30", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30:05.5", time.Date(2024, 1, 15, 10, 30, 5, 500000000, time.UTC)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s: got %v", tc.in, got)
		}
	}
	if got := FormatDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)); got != "2024-01-15" {
		t.Errorf("got %s", got)
	}
	if got := FormatDate(time.Date(2024, 1, 15, 1, 2, 3, 0, time.UTC)); got != "2024-01-15T01:02:03Z" {
		t.Errorf("got %s", got)
	}
}
