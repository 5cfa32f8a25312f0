package parser

import (
	"strings"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/xuri/excelize/v2"
)

// styleCache resolves cell style indexes to models.Style once per index.
type styleCache struct {
	f      *excelize.File
	styles map[int]models.Style
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, styles: make(map[int]models.Style)}
}

func (c *styleCache) cellStyle(sheetName, cellName string) (models.Style, error) {
	idx, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return models.Style{}, err
	}
	if style, ok := c.styles[idx]; ok {
		return style, nil
	}

	xs, err := c.f.GetStyle(idx)
	if err != nil {
		return models.Style{}, err
	}
	style := fontStyle(xs.Font)
	style.Color = c.fontColor(xs.Font)
	c.styles[idx] = style
	return style, nil
}

// fontStyle converts an excelize font to the attributes the formatter uses,
// except the color, which needs the workbook palette.
func fontStyle(font *excelize.Font) models.Style {
	if font == nil {
		return models.Style{}
	}
	return models.Style{
		Bold:          font.Bold,
		Italic:        font.Italic,
		Strikethrough: font.Strike,
		Subscript:     strings.EqualFold(font.VertAlign, "subscript"),
		Superscript:   strings.EqualFold(font.VertAlign, "superscript"),
		Underline:     models.ParseUnderline(font.Underline),
	}
}

// fontColor resolves a font color given as RGB, theme or indexed palette
// entry, with its tint applied, to "#RRGGBB".
func (c *styleCache) fontColor(font *excelize.Font) string {
	if font == nil {
		return ""
	}
	base := normalizeColor(c.f.GetBaseColor(font.Color, font.ColorIndexed, font.ColorTheme))
	if base == "" || font.ColorTint == 0 {
		return base
	}
	return normalizeColor(excelize.ThemeColor(strings.TrimPrefix(base, "#"), font.ColorTint))
}

// normalizeColor turns "FF0000", "#ff0000" or "FFFF0000" (ARGB) into "#FF0000".
// Anything else, including the empty string, yields "".
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	if len(c) != 6 {
		return ""
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return ""
		}
	}
	return "#" + c
}
