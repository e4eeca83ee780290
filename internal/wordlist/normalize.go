package wordlist

import "strings"

// Normalize strips leading and trailing whitespace from every line.
// Empty lines become empty strings and keep their position; the input
// is not modified.
func Normalize(lines []string) []string {
	words := make([]string, len(lines))
	for i, line := range lines {
		words[i] = strings.TrimSpace(line)
	}
	return words
}
