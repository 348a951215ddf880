package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// Sheet limits of the xlsx format.
const (
	MaxColumns = 16384
	MaxRows    = 1048576
)

var addressPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// ParseAddress parses an "A1"-style address into a 0-based column and a
// 1-based row. Letters are case-insensitive. Malformed or out-of-range
// addresses return ok == false.
func ParseAddress(addr string) (col, row int, ok bool) {
	m := addressPattern.FindStringSubmatch(strings.TrimSpace(addr))
	if m == nil {
		return 0, 0, false
	}
	col, ok = ColumnIndex(m[1])
	if !ok {
		return 0, 0, false
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 || row > MaxRows {
		return 0, 0, false
	}
	return col, row, true
}

// ColumnIndex converts column letters to a 0-based index (A=0, Z=25, AA=26).
func ColumnIndex(letters string) (int, bool) {
	if letters == "" {
		return 0, false
	}
	n := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A'+1)
		if n > MaxColumns {
			return 0, false
		}
	}
	return n - 1, true
}

// NormalizeAddress upper-cases and trims an address as entered by a user.
func NormalizeAddress(addr string) string {
	return strings.ToUpper(strings.TrimSpace(addr))
}
