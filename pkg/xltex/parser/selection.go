package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/xuri/excelize/v2"
)

// ParseSelection parses a single-area reference such as "A1:C3",
// "$A$1:$C$3", "Sheet1!B2" or "'My sheet'!A1:B2" into an Area.
// It returns the sheet name when the reference carries one.
// Multi-area references fail with ErrInvalidSelection.
func ParseSelection(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", models.Area{}, fmt.Errorf("%w: empty reference", ErrInvalidSelection)
	}

	sheetName, rangeStr := splitSheet(ref)

	// Areas of a multi-selection are joined by "," (or " " for intersections)
	if strings.ContainsAny(rangeStr, "!, ;") {
		return "", models.Area{}, fmt.Errorf("%w: %q has more than one area", ErrInvalidSelection, ref)
	}

	area := parseRangeToArea(rangeStr)
	if area == nil {
		return "", models.Area{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidSelection, ref)
	}

	return sheetName, *area, nil
}

// splitSheet separates an optional sheet prefix from a reference.
func splitSheet(ref string) (string, string) {
	if strings.HasPrefix(ref, "'") {
		if idx := strings.Index(ref, "'!"); idx > 0 {
			return strings.ReplaceAll(ref[1:idx], "''", "'"), ref[idx+2:]
		}
		return "", ref
	}
	if idx := strings.Index(ref, "!"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return "", ref
}

// parseRangeToArea parses a range string like $A$1:$D$10 (or a single
// cell like B2) to an Area with ordered corners.
func parseRangeToArea(rangeStr string) *models.Area {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
