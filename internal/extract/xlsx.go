package extract

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

func xlsxFields(data []byte) ([]string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := wb.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	return header, nil
}
