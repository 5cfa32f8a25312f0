package xltex

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xltex-go/pkg/xltex/latex"
	"github.com/ukaji3/xltex-go/pkg/xltex/models"
)

// writeWorkbook saves a small styled workbook and returns its path.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "B2", "a"))
	require.NoError(t, f.SetCellValue(sheet, "C2", "b"))
	require.NoError(t, f.SetCellValue(sheet, "B3", 5))
	require.NoError(t, f.SetCellValue(sheet, "C3", "d"))

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B3", "B3", bold))

	red, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#FF0000", Strike: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "C3", "C3", red))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRenderDetectedSelection(t *testing.T) {
	path := writeWorkbook(t)

	result, err := Render(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "book.xlsx", result.BookName)
	assert.Equal(t, "Sheet1", result.SheetName)
	require.NotNil(t, result.Area)
	assert.Equal(t, "B2:C3", result.Area.Ref())

	expected := `\usepackage{xcolor}
\usepackage{cancel}
\begin{tabular}
a & b\\
\textbf{5} & \cancel{\textcolor{#FF0000}{d}}\\
\end{tabular}`
	assert.Equal(t, expected, result.Output)
}

func TestRenderExplicitRange(t *testing.T) {
	path := writeWorkbook(t)

	opts := DefaultOptions()
	opts.Range = "Sheet1!A1:C2"
	result, err := Render(path, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{` & a & b\\`}, result.Document.Rows)
}

func TestRenderMathVariant(t *testing.T) {
	path := writeWorkbook(t)

	opts := Options{Variant: VariantMath, Range: "A2:C2"}
	result, err := Render(path, opts)
	require.NoError(t, err)

	assert.Equal(t, `\begin{array}{ccc}`, result.Document.Begin)
	assert.Equal(t, []string{`  & a & b\\`}, result.Document.Rows)
}

func TestRenderPreviewVariant(t *testing.T) {
	path := writeWorkbook(t)

	result, err := Render(path, Options{Variant: VariantPreview})
	require.NoError(t, err)

	assert.Contains(t, result.Output, `\documentclass{standalone}`)
	assert.Contains(t, result.Output, `\begin{array}{cc}`)
}

func TestRenderPrintArea(t *testing.T) {
	path := writeWorkbook(t)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = RenderFile(f, Options{UsePrintArea: true})
	assert.True(t, errors.Is(err, ErrNoPrintArea), "got %v", err)

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$B$2:$B$3",
		Scope:    "Sheet1",
	}))

	result, err := RenderFile(f, Options{UsePrintArea: true})
	require.NoError(t, err)
	assert.Equal(t, []string{`a\\`, `\textbf{5}\\`}, result.Document.Rows)
}

func TestRenderErrors(t *testing.T) {
	path := writeWorkbook(t)

	_, err := Render(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = Render(path, Options{Range: "A1:B2,D1:D3"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.True(t, IsInvalidSelection(err))
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "A1:B2,D1:D3", renderErr.Range)

	_, err = Render(path, Options{Sheet: "Nope"})
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.False(t, IsInvalidSelection(err))

	_, err = Render(path, Options{Sheet: "Sheet1", Range: "Other!A1"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestRenderGridEmpty(t *testing.T) {
	result := RenderGrid(models.Grid{}, DefaultOptions())
	assert.Equal(t, "\\begin{tabular}\n\\end{tabular}", result.Output)
}

func TestOptionsResolution(t *testing.T) {
	space := " "
	tests := []struct {
		opts  Options
		env   latex.Environment
		blank string
		sink  Sink
	}{
		{Options{Variant: VariantText}, latex.Tabular, "", SinkText},
		{Options{Variant: VariantMath}, latex.Array, " ", SinkText},
		{Options{Variant: VariantPreview}, latex.Array, " ", SinkPreview},
		{Options{Variant: VariantText, Environment: latex.Array, BlankCell: &space}, latex.Array, " ", SinkText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.env, tt.opts.ResolvedEnvironment(), "%+v", tt.opts)
		assert.Equal(t, tt.blank, tt.opts.ResolvedBlankCell(), "%+v", tt.opts)
		assert.Equal(t, tt.sink, tt.opts.Sink(), "%+v", tt.opts)
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("preview")
	require.NoError(t, err)
	assert.Equal(t, VariantPreview, v)

	_, err = ParseVariant("html")
	assert.Error(t, err)
}
