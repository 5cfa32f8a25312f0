package parser

import (
	"strconv"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the cells of area on a sheet into a rectangular grid.
// Values are raw (unformatted) cell values; styles come from the cell font.
func ReadGrid(f *excelize.File, sheetName string, area models.Area) (models.Grid, error) {
	styles := newStyleCache(f)

	grid := make(models.Grid, 0, area.Rows())
	for rowNum := area.R1; rowNum <= area.R2; rowNum++ {
		row := make([]models.Cell, 0, area.Cols())
		for colNum := area.C1; colNum <= area.C2; colNum++ {
			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return nil, err
			}

			value, err := readValue(f, sheetName, cellName)
			if err != nil {
				return nil, err
			}

			style, err := styles.cellStyle(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			row = append(row, models.Cell{Value: value, Style: style})
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// readValue returns a bool for boolean cells, a number for numeric cells
// and the raw text for everything else.
func readValue(f *excelize.File, sheetName, cellName string) (interface{}, error) {
	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return "", nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}
	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b, nil
		}
		return raw, nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw), nil
	default:
		// Text, string formula results, dates and errors keep their text
		return raw, nil
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
