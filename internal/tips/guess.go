package tips

import "strings"

// GuessNameColumn picks the most likely employee-name column: an exact
// "name"/"employee name" header, then any header containing "name",
// then the first column.
func GuessNameColumn(headers []string) int {
	lower := lowered(headers)
	for i, h := range lower {
		if h == "name" || h == "employee name" {
			return i
		}
	}
	for i, h := range lower {
		if strings.Contains(h, "name") {
			return i
		}
	}
	return 0
}

// GuessAmountColumn picks the most likely tip-amount column, trying
// header shapes from most to least specific and falling back to the
// last column, where totals usually live.
func GuessAmountColumn(headers []string) int {
	checks := []func(string) bool{
		func(h string) bool { return h == "total tips" || h == "tips total" },
		func(h string) bool { return h == "total" },
		func(h string) bool { return strings.Contains(h, "total") && strings.Contains(h, "tip") },
		func(h string) bool { return h == "tips" },
		func(h string) bool { return strings.Contains(h, "tip") },
		func(h string) bool { return strings.Contains(h, "amount") },
	}

	lower := lowered(headers)
	for _, test := range checks {
		for i, h := range lower {
			if test(h) {
				return i
			}
		}
	}
	return len(headers) - 1
}

func lowered(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}
