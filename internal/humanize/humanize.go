// Package humanize formats quantities for log messages.
package humanize

import "fmt"

// SI formats value using SI prefixes, for example SI(10485760, "B")
// returns "10.49 MB".
func SI(value float64, unit string) string {
	value, prefix := reduce(value)
	return fmt.Sprintf("%.2f %s%s", value, prefix, unit)
}

// reduce returns value divided by the largest power of 1000 that
// keeps it at least one, together with the matching prefix.
func reduce(value float64) (float64, string) {
	prefixes := []string{"", "k", "M", "G"}
	idx := 0
	for value >= 1e03 && idx < len(prefixes)-1 {
		value /= 1e03
		idx++
	}
	return value, prefixes[idx]
}
