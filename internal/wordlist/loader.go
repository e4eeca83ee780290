// Package wordlist loads, normalizes, sorts, and writes word lists.
package wordlist

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// ReadLines reads the file at path into ordered raw lines, keeping
// line terminators. A final line without a trailing newline is still
// returned as a line.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var lines []string
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}
	return lines, nil
}
