package latex

import (
	"strings"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
)

// Environment is the LaTeX environment a table is wrapped in.
type Environment string

const (
	// Tabular emits a bare \begin{tabular}.
	Tabular Environment = "tabular"
	// Array emits \begin{array}{c...c} with one centered column per grid column.
	Array Environment = "array"
)

// ParseEnvironment validates an environment name.
func ParseEnvironment(s string) (Environment, bool) {
	switch Environment(s) {
	case Tabular, Array:
		return Environment(s), true
	}
	return "", false
}

const (
	columnSeparator = " & "
	rowTerminator   = `\\`
)

// Options configures Render.
type Options struct {
	// Environment defaults to Tabular.
	Environment Environment
	// BlankCell replaces empty cell values, usually "" or " ".
	BlankCell string
	// Escape quotes LaTeX special characters in cell text before formatting.
	Escape bool
}

// Render formats every cell of grid and wraps the rows in the configured
// environment, preceded by the package declarations the cells required.
// The grid is expected to be rectangular. An empty grid renders as an
// environment with no rows and, for Array, an empty column spec.
func Render(grid models.Grid, opts Options) *models.Document {
	env := opts.Environment
	if env == "" {
		env = Tabular
	}

	pkgs := NewPackageSet()
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		fields := make([]string, len(row))
		for j, cell := range row {
			value := Stringify(cell.Value)
			if value == "" {
				fields[j] = opts.BlankCell
				continue
			}
			if opts.Escape {
				value = Escape(value)
			}
			fields[j] = Format(value, cell.Style, pkgs)
		}
		rows = append(rows, strings.Join(fields, columnSeparator)+rowTerminator)
	}

	return &models.Document{
		Environment: string(env),
		Preamble:    pkgs.Declarations(),
		Begin:       begin(env, grid.Cols()),
		Rows:        rows,
		End:         `\end{` + string(env) + `}`,
	}
}

func begin(env Environment, cols int) string {
	if env == Array {
		return `\begin{array}{` + strings.Repeat("c", cols) + `}`
	}
	return `\begin{` + string(env) + `}`
}
