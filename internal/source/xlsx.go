package source

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX reads the first worksheet of an Excel workbook.
type XLSX struct {
	Location string
	Fetcher  *Fetcher
}

func (x *XLSX) Grid(ctx context.Context) ([][]string, error) {
	data, err := x.Fetcher.Fetch(ctx, x.Location)
	if err != nil {
		return nil, err
	}
	return ReadXLSX(data)
}

// ReadXLSX returns the formatted cell values of the workbook's first sheet.
func ReadXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrMalformed, sheets[0], err)
	}
	return rows, nil
}
