package repl

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// lineReader hands out trimmed input lines and whitespace separated numbers.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// word returns the next non-empty line, trimmed and lowercased.
func (lr *lineReader) word() (string, error) {
	for lr.scanner.Scan() {
		line := strings.TrimSpace(lr.scanner.Text())
		if len(line) == 0 {
			continue
		}
		return strings.ToLower(line), nil
	}
	return "", lr.err()
}

// floats collects count numbers across as many lines as needed. Tokens that
// do not parse are returned in skipped; numbers past count on the last line
// are dropped.
func (lr *lineReader) floats(count int) (values []float64, skipped []string, err error) {
	values = make([]float64, 0, count)
	for len(values) < count {
		if !lr.scanner.Scan() {
			if err := lr.err(); err != io.EOF {
				return nil, skipped, err
			}
			return nil, skipped, io.ErrUnexpectedEOF
		}
		for _, field := range strings.Fields(lr.scanner.Text()) {
			if len(values) == count {
				break
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				skipped = append(skipped, field)
				continue
			}
			values = append(values, v)
		}
	}
	return values, skipped, nil
}

func (lr *lineReader) err() error {
	if err := lr.scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}
