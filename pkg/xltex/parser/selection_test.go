package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/xuri/excelize/v2"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		area      models.Area
	}{
		{"A1:C3", "", models.Area{R1: 1, C1: 1, R2: 3, C2: 3}},
		{"$A$1:$C$3", "", models.Area{R1: 1, C1: 1, R2: 3, C2: 3}},
		{"B2", "", models.Area{R1: 2, C1: 2, R2: 2, C2: 2}},
		{"C3:A1", "", models.Area{R1: 1, C1: 1, R2: 3, C2: 3}},
		{"Sheet1!B2:D4", "Sheet1", models.Area{R1: 2, C1: 2, R2: 4, C2: 4}},
		{"'My sheet'!A1:B2", "My sheet", models.Area{R1: 1, C1: 1, R2: 2, C2: 2}},
	}

	for _, tt := range tests {
		sheetName, area, err := ParseSelection(tt.ref)
		if err != nil {
			t.Errorf("ParseSelection(%q) failed: %v", tt.ref, err)
			continue
		}
		if sheetName != tt.sheetName || area != tt.area {
			t.Errorf("ParseSelection(%q) = %q, %+v, expected %q, %+v",
				tt.ref, sheetName, area, tt.sheetName, tt.area)
		}
	}
}

func TestParseSelectionInvalid(t *testing.T) {
	refs := []string{
		"",
		"A1:B2,D1:D3",
		"A1:B2 C3",
		"Sheet1!A1:B2,Sheet1!D1",
		"not a range",
		"A1:B2:C3",
	}

	for _, ref := range refs {
		if _, _, err := ParseSelection(ref); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("ParseSelection(%q) error = %v, expected ErrInvalidSelection", ref, err)
		}
	}
}

func TestDetectSelection(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := DetectSelection(f, "Sheet1"); !errors.Is(err, ErrEmptySheet) {
		t.Errorf("Expected ErrEmptySheet, got %v", err)
	}

	f.SetCellValue("Sheet1", "B2", "x")
	f.SetCellValue("Sheet1", "D5", 1)

	area, err := DetectSelection(f, "Sheet1")
	if err != nil {
		t.Fatalf("DetectSelection failed: %v", err)
	}
	if expected := (models.Area{R1: 2, C1: 2, R2: 5, C2: 4}); area != expected {
		t.Errorf("DetectSelection = %+v, expected %+v", area, expected)
	}
}

func TestPrintAreaSelection(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := PrintAreaSelection(f, "Sheet1"); !errors.Is(err, ErrNoPrintArea) {
		t.Errorf("Expected ErrNoPrintArea, got %v", err)
	}

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$4",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	area, err := PrintAreaSelection(f, "Sheet1")
	if err != nil {
		t.Fatalf("PrintAreaSelection failed: %v", err)
	}
	if expected := (models.Area{R1: 1, C1: 1, R2: 4, C2: 3}); area != expected {
		t.Errorf("PrintAreaSelection = %+v, expected %+v", area, expected)
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	sheetName, areas := parsePrintAreaReference("'Data'!$A$1:$B$2,'Data'!$D$1:$E$2")
	if sheetName != "Data" {
		t.Errorf("Expected sheet Data, got %q", sheetName)
	}
	if len(areas) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(areas))
	}
	if areas[1] != (models.Area{R1: 1, C1: 4, R2: 2, C2: 5}) {
		t.Errorf("Unexpected second area %+v", areas[1])
	}
}
