package utils

import "strconv"

// FormatThousands renders n with comma grouping, e.g. 1234567 -> "1,234,567".
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
