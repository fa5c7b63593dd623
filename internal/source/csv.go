package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSV reads comma, semicolon or tab separated text. Excel exports in
// Swedish locales use semicolons.
type CSV struct {
	Location string
	Fetcher  *Fetcher
	// Comma overrides delimiter detection when non-zero.
	Comma rune
}

func (c *CSV) Grid(ctx context.Context) ([][]string, error) {
	data, err := c.Fetcher.Fetch(ctx, c.Location)
	if err != nil {
		return nil, err
	}
	return ReadCSV(data, c.Comma)
}

func ReadCSV(data []byte, comma rune) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))
	if comma == 0 {
		comma = detectDelimiter(data)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse csv: %v", ErrMalformed, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
