package excel

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Contacts"

// excelize has no native autofit, so column widths are derived from
// the longest cell per column, within sane bounds.
const (
	minColumnWidth = 10
	maxColumnWidth = 60
)

// Codec reads and writes .xlsx workbooks. Phone numbers are written as
// text cells so spreadsheet software does not strip the leading zero.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) ReadRows(data []byte) ([][]string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func (c *Codec) Write(header []string, rows [][]string) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	index, err := workbook.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := writeRow(workbook, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(workbook, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := autoSizeColumns(workbook, header, rows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(workbook *excelize.File, rowIndex int, cells []string) error {
	for colIndex, value := range cells {
		cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := workbook.SetCellStr(sheetName, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func autoSizeColumns(workbook *excelize.File, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	measure := func(cells []string) {
		for i, value := range cells {
			if i >= len(widths) {
				widths = append(widths, make([]int, i-len(widths)+1)...)
			}
			if n := utf8.RuneCountInString(value); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	for i, runes := range widths {
		width := float64(runes + 2)
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := workbook.SetColWidth(sheetName, name, name, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", name, err)
		}
	}
	return nil
}
