package listprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareFold(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "ABC", 0},
		{"abc", "abd", -1},
		{"ABD", "abc", 1},
		{"ab", "abc", -1},
		{"abc", "AB", 1},
		// Ordinal: '_' (0x5F) sorts after upper-case letters.
		{"A_B", "AZB", 1},
		{"System.Size", "system.size", 0},
		{"é", "É", 0},
		// Invalid UTF-8 bytes compare by value, after every code point.
		{"\xff", "\xfe", 1},
		{"\xfe", "\xff", -1},
		{"\xff", "\xff", 0},
		{"a\xff", "A\xff", 0},
		{"\xff", "\uFFFD", 1},
		{"\xe9", "é", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareFold(tt.a, tt.b), "CompareFold(%q, %q)", tt.a, tt.b)
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{
		{CanonicalName: "System.Title", DisplayName: "Title", Value: "1"},
		{CanonicalName: "Isom.Brand", DisplayName: "Isom.Brand", Value: "2"},
		{CanonicalName: "system.size", DisplayName: "Size", Value: "3"},
		{CanonicalName: "System.Size", DisplayName: "bytes", Value: "4"},
		{CanonicalName: "SYSTEM.SIZE", DisplayName: "Bytes", Value: "5"},
		{CanonicalName: "System.Author", DisplayName: "Authors", Value: "6"},
	}

	SortRows(rows)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Value
	}
	// 4 and 5 tie on both keys and keep their collection order.
	assert.Equal(t, []string{"2", "6", "4", "5", "3", "1"}, got)
}

func TestSortRowsIsTotalOrder(t *testing.T) {
	rows := []Row{
		{CanonicalName: "b", DisplayName: "x"},
		{CanonicalName: "A", DisplayName: "y"},
		{CanonicalName: "a", DisplayName: "X"},
		{CanonicalName: "C", DisplayName: "z"},
	}
	SortRows(rows)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, CompareRows(rows[i-1], rows[i]), 0)
	}
}
