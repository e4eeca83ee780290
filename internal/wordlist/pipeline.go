package wordlist

import "fmt"

// Summary describes one completed sort run.
type Summary struct {
	Words      int
	EmptyLines int
}

// SortFile reads src, trims each line, sorts the words by code-point
// order, and writes them one per line to dst. Duplicates and empty
// lines are preserved. The destination is not touched when reading
// fails.
func SortFile(src, dst string) (Summary, error) {
	lines, err := ReadLines(src)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read %s: %w", src, err)
	}
	words := Normalize(lines)
	Sort(words)
	if err := Write(dst, words); err != nil {
		return Summary{}, fmt.Errorf("failed to write %s: %w", dst, err)
	}
	summary := Summary{Words: len(words)}
	for _, word := range words {
		if word == "" {
			summary.EmptyLines++
		}
	}
	return summary, nil
}
