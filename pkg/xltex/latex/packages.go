// Package latex formats spreadsheet cells as LaTeX table markup.
package latex

// Package is the key of a LaTeX package required by a formatting macro.
type Package string

const (
	PackageColor         Package = "color"
	PackageStrikethrough Package = "strikethrough"
	PackageSubscript     Package = "subscript"
)

var declarations = map[Package]string{
	PackageColor:         `\usepackage{xcolor}`,
	PackageStrikethrough: `\usepackage{cancel}`,
	PackageSubscript:     `\usepackage{fixltx2e}`,
}

// Declaration returns the preamble line for p.
func (p Package) Declaration() string {
	return declarations[p]
}

// PackageSet collects the packages required by a render. Insertion order
// is kept and each package is registered at most once.
type PackageSet struct {
	order []Package
	seen  map[Package]struct{}
}

// NewPackageSet returns an empty PackageSet.
func NewPackageSet() *PackageSet {
	return &PackageSet{seen: make(map[Package]struct{})}
}

// Require registers p and reports whether it was newly added.
func (s *PackageSet) Require(p Package) bool {
	if _, ok := s.seen[p]; ok {
		return false
	}
	s.seen[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Has reports whether p has been registered.
func (s *PackageSet) Has(p Package) bool {
	_, ok := s.seen[p]
	return ok
}

// Len returns the number of registered packages.
func (s *PackageSet) Len() int {
	return len(s.order)
}

// Packages returns the registered keys in registration order.
func (s *PackageSet) Packages() []Package {
	out := make([]Package, len(s.order))
	copy(out, s.order)
	return out
}

// Declarations returns the preamble lines in registration order.
func (s *PackageSet) Declarations() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, p.Declaration())
	}
	return out
}
