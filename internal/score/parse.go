// Package score holds the numeric core: locale-tolerant parsing of docking
// score fields and population z-score statistics.
package score

import (
	"strconv"
	"strings"
)

// Parse converts a raw score field into a float64, tolerating the regional
// decimal-comma convention used by some docking exports. Rules, in order:
//
//  1. comma with at least two trailing characters: comma is the decimal point;
//  2. comma with fewer than two trailing characters: decimal point plus "00"
//     appended (compensates truncated fractional parts like "-7,5");
//  3. no comma: plain decimal number.
//
// The second return is false when the field is not numeric; callers drop the
// row. A leading sign survives all three rules.
func Parse(value string) (float64, bool) {
	var s string
	if i := strings.IndexByte(value, ','); i >= 0 {
		if len(value)-i-1 >= 2 {
			s = strings.ReplaceAll(value, ",", ".")
		} else {
			s = strings.ReplaceAll(value, ",", ".") + "00"
		}
	} else {
		s = value
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
