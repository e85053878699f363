package assistant

import (
	"fmt"
	"math"
	"strconv"
)

// rupiah renders an amount with id-ID thousands separators: 1234567 -> "1.234.567".
func rupiah(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var out []byte
		for i, c := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, '.')
			}
			out = append(out, c)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}

// rupiahF rounds a fractional amount to whole rupiah before formatting.
func rupiahF(f float64) string {
	return rupiah(int64(math.Round(f)))
}

// pct renders a percentage with one decimal, e.g. "15.0".
func pct(f float64) string {
	return fmt.Sprintf("%.1f", f)
}
