package term

import (
	"errors"
	"testing"
)

func TestCompareByWeight(t *testing.T) {
	tests := []struct {
		a, b int64
		want int
	}{
		{10, 5, 1},
		{5, 5, 0},
		{5, 10, -1},
		{-1, 0, -1},
	}
	for _, tc := range tests {
		got := CompareByWeight(New("a", tc.a), New("b", tc.b))
		if got != tc.want {
			t.Errorf("CompareByWeight(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareByPrefix(t *testing.T) {
	tests := []struct {
		a, b string
		r    int
		want int
	}{
		{"apple", "apricot", 2, 0},
		{"apple", "apricot", 3, 1},
		{"apricot", "apple", 3, -1},
		{"ab", "abc", 5, 1},
		{"abc", "ab", 2, 0},
		{"", "", 0, 0},
		{"zeta", "alpha", 0, 0},
		{"çava", "çane", 2, 0},
		{"çava", "çane", 3, -1},
	}
	for _, tc := range tests {
		got, err := CompareByPrefix(New(tc.a, 0), New(tc.b, 0), tc.r)
		if err != nil {
			t.Fatalf("CompareByPrefix(%q, %q, %d): %v", tc.a, tc.b, tc.r, err)
		}
		if got != tc.want {
			t.Errorf("CompareByPrefix(%q, %q, %d) = %d, want %d", tc.a, tc.b, tc.r, got, tc.want)
		}
	}
}

func TestCompareByPrefixNegative(t *testing.T) {
	if _, err := CompareByPrefix(New("a", 1), New("b", 1), -1); !errors.Is(err, ErrNegativePrefix) {
		t.Fatalf("expected ErrNegativePrefix, got %v", err)
	}
}

func TestLessAndString(t *testing.T) {
	if !Less(New("alpha", 9), New("beta", 1)) {
		t.Errorf("expected alpha < beta")
	}
	if Less(New("beta", 1), New("alpha", 9)) {
		t.Errorf("expected beta not < alpha")
	}
	if got := New("the quick", 42).String(); got != "42\tthe quick" {
		t.Errorf("String() = %q", got)
	}
}
