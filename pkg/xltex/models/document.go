package models

import "strings"

// Document is a rendered LaTeX table.
type Document struct {
	// Environment is the table environment name ("tabular" or "array").
	Environment string `json:"environment" yaml:"environment"`
	// Preamble holds the package declarations in registration order.
	Preamble []string `json:"preamble,omitempty" yaml:"preamble,omitempty"`
	// Begin is the environment-open line.
	Begin string `json:"begin" yaml:"begin"`
	// Rows holds one line per grid row, each terminated by \\.
	Rows []string `json:"rows" yaml:"rows"`
	// End is the environment-close line.
	End string `json:"end" yaml:"end"`
}

// Lines returns the document as ordered lines.
func (d *Document) Lines() []string {
	lines := make([]string, 0, len(d.Preamble)+len(d.Rows)+2)
	lines = append(lines, d.Preamble...)
	lines = append(lines, d.Begin)
	lines = append(lines, d.Rows...)
	lines = append(lines, d.End)
	return lines
}

// String joins the document lines with newlines.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}
