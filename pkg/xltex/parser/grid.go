package parser

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
)

// GridFormat is the encoding of a grid document.
type GridFormat string

const (
	GridJSON GridFormat = "json"
	GridYAML GridFormat = "yaml"
)

// GridFormatFromPath guesses the grid format from a file extension.
func GridFormatFromPath(path string) (GridFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return GridJSON, nil
	case ".yaml", ".yml":
		return GridYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeGrid decodes a grid document. The document is either an array of
// rows or, for a single row, a flat array of cells. A cell is a scalar or
// an object {"value": ..., "style": {...}}.
func DecodeGrid(data []byte, format GridFormat) (models.Grid, error) {
	var doc interface{}
	switch format {
	case GridJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding json grid: %w", err)
		}
	case GridYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding yaml grid: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if doc == nil {
		return models.Grid{}, nil
	}
	items, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: grid must be an array, got %T", ErrInvalidGrid, doc)
	}
	if len(items) == 0 {
		return models.Grid{}, nil
	}

	// A flat array (first item is not itself an array) is a single row
	if _, nested := items[0].([]interface{}); !nested {
		row, err := decodeRow(items, 1)
		if err != nil {
			return nil, err
		}
		return models.NormalizeGrid(row), nil
	}

	grid := make(models.Grid, 0, len(items))
	for i, item := range items {
		cells, ok := item.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: row %d is %T, not an array", ErrInvalidGrid, i+1, item)
		}
		row, err := decodeRow(cells, i+1)
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

func decodeRow(items []interface{}, rowNum int) ([]models.Cell, error) {
	row := make([]models.Cell, 0, len(items))
	for j, item := range items {
		cell, err := decodeCell(item)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %d: %w", rowNum, j+1, err)
		}
		row = append(row, cell)
	}
	return row, nil
}

func decodeCell(item interface{}) (models.Cell, error) {
	obj, ok := toObject(item)
	if !ok {
		value, err := decodeScalar(item)
		return models.Cell{Value: value}, err
	}

	value, err := decodeScalar(obj["value"])
	if err != nil {
		return models.Cell{}, err
	}
	cell := models.Cell{Value: value}

	if raw, ok := obj["style"]; ok && raw != nil {
		style, ok := toObject(raw)
		if !ok {
			return models.Cell{}, fmt.Errorf("style must be an object, got %T", raw)
		}
		cell.Style = decodeStyle(style)
	}
	return cell, nil
}

// toObject accepts both JSON objects and YAML mappings.
func toObject(item interface{}) (map[string]interface{}, bool) {
	switch m := item.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}

func decodeScalar(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string, bool, int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if x == float64(int64(x)) && x < 1e15 && x > -1e15 {
			return int64(x), nil
		}
		return x, nil
	default:
		return nil, fmt.Errorf("unsupported cell value %T", v)
	}
}

func decodeStyle(m map[string]interface{}) models.Style {
	flag := func(key string) bool {
		b, _ := m[key].(bool)
		return b
	}

	style := models.Style{
		Bold:          flag("bold"),
		Italic:        flag("italic"),
		Strikethrough: flag("strikethrough"),
		Subscript:     flag("subscript"),
		Superscript:   flag("superscript"),
	}

	switch u := m["underline"].(type) {
	case bool:
		if u {
			style.Underline = models.UnderlineSingle
		}
	case string:
		style.Underline = models.ParseUnderline(u)
	}

	if c, ok := m["color"].(string); ok {
		style.Color = normalizeColor(c)
	}
	return style
}
