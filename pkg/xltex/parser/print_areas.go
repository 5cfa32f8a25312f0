package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// PrintAreaSelection returns the print area of a sheet as a selection.
// A print area made of several ranges is not a single rectangle and
// fails with ErrInvalidSelection.
func PrintAreaSelection(f *excelize.File, sheetName string) (models.Area, error) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}

		refSheet, areas := parsePrintAreaReference(dn.RefersTo)
		if refSheet != sheetName {
			continue
		}
		switch len(areas) {
		case 0:
			continue
		case 1:
			return areas[0], nil
		default:
			return models.Area{}, fmt.Errorf("%w: print area %q has %d ranges", ErrInvalidSelection, dn.RefersTo, len(areas))
		}
	}

	return models.Area{}, ErrNoPrintArea
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10,SheetName!$F$1:$G$2
func parsePrintAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		sheet, area, err := ParseSelection(part)
		if err != nil {
			continue
		}
		if sheetName == "" {
			sheetName = sheet
		}
		areas = append(areas, area)
	}

	return sheetName, areas
}
