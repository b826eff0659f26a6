package listprops

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// CompareRows orders rows by canonical name, then display name, using an
// ordinal case-insensitive comparison that does not depend on the locale.
func CompareRows(a, b Row) int {
	if c := CompareFold(a.CanonicalName, b.CanonicalName); c != 0 {
		return c
	}
	return CompareFold(a.DisplayName, b.DisplayName)
}

// SortRows sorts rows in place by CompareRows. Rows that compare equal
// keep their collection order.
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, CompareRows)
}

// invalidByte places a byte that is not valid UTF-8 after every code point,
// keeping distinct invalid bytes distinct.
const invalidByte = unicode.MaxRune + 1

// foldKey decodes the first code point of s mapped to upper case.
func foldKey(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return invalidByte + rune(s[0]), 1
	}
	return unicode.ToUpper(r), n
}

// CompareFold compares a and b code point by code point after mapping
// each to upper case. Bytes that are not valid UTF-8 compare by value
// and sort after all code points. It returns -1, 0 or +1.
func CompareFold(a, b string) int {
	for a != "" && b != "" {
		ua, na := foldKey(a)
		ub, nb := foldKey(b)

		if ua < ub {
			return -1
		}
		if ua > ub {
			return 1
		}

		a, b = a[na:], b[nb:]
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}
