// Package output serializes rendered documents.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
)

// Text returns the LaTeX source of doc.
func Text(doc *models.Document) string {
	return doc.String()
}

// Preview wraps doc in a standalone document that a LaTeX engine can
// typeset on its own. An array environment is placed in display math.
func Preview(doc *models.Document) string {
	var b strings.Builder
	b.WriteString(`\documentclass{standalone}` + "\n")
	for _, line := range doc.Preamble {
		b.WriteString(line + "\n")
	}
	b.WriteString(`\begin{document}` + "\n")

	math := doc.Environment == "array"
	if math {
		b.WriteString(`$\displaystyle` + "\n")
	}
	b.WriteString(doc.Begin + "\n")
	for _, row := range doc.Rows {
		b.WriteString(row + "\n")
	}
	b.WriteString(doc.End + "\n")
	if math {
		b.WriteString("$\n")
	}

	b.WriteString(`\end{document}`)
	return b.String()
}

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v to YAML.
func ToYAML(v interface{}) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return data, nil
}
