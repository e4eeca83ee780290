package wordlist

import "sort"

// Sort orders words in place, non-decreasing by code-point value.
func Sort(words []string) {
	sort.Strings(words)
}

// IsSorted reports whether words are in non-decreasing code-point order.
func IsSorted(words []string) bool {
	return sort.StringsAreSorted(words)
}
