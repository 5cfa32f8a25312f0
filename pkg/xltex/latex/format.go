package latex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
)

// Format wraps value in the LaTeX macros for style and registers the
// packages those macros need in pkgs.
//
// Macros nest in a fixed order: bold, color, italic, strikethrough,
// subscript, superscript, underline. The first applied is innermost.
// Only whole-cell formatting is considered.
func Format(value string, style models.Style, pkgs *PackageSet) string {
	if style.Bold {
		value = wrap("textbf", value)
	}

	if style.HasColor() {
		pkgs.Require(PackageColor)
		value = fmt.Sprintf(`\textcolor{%s}{%s}`, style.Color, value)
	}

	if style.Italic {
		value = wrap("textit", value)
	}

	if style.Strikethrough {
		pkgs.Require(PackageStrikethrough)
		value = wrap("cancel", value)
	}

	if style.Subscript {
		pkgs.Require(PackageSubscript)
		value = wrap("textsubscript", value)
	}

	if style.Superscript {
		value = wrap("textsuperscript", value)
	}

	if style.Underline == models.UnderlineSingle {
		value = wrap("underline", value)
	}

	return value
}

func wrap(macro, value string) string {
	return `\` + macro + `{` + value + `}`
}

// Stringify returns the text form of a raw cell value: integers in
// decimal, floats in their shortest round-trip form, booleans as
// "true"/"false". Nil is the blank cell.
func Stringify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	default:
		return fmt.Sprint(x)
	}
}

// formatFloat prints plain decimals for 1e-6 <= |x| < 1e21 and exponent
// form ("1e+21", "1.5e-7") outside that range, as spreadsheet hosts do.
func formatFloat(x float64, bitSize int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	abs := math.Abs(x)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(x, 'e', -1, bitSize)
		// Go pads the exponent to two digits
		if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+3 && s[i+2] == '0' {
			s = s[:i+2] + s[i+3:]
		}
		return s
	}
	return strconv.FormatFloat(x, 'f', -1, bitSize)
}

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape quotes the characters LaTeX treats as special in text mode.
func Escape(s string) string {
	return escaper.Replace(s)
}
