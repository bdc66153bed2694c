package model

import "github.com/m-mizutani/goerr/v2"

// Canonical column names understood by the row source
const (
	ColumnUsername    = "username"
	ColumnEmail       = "email"
	ColumnDisplayName = "display_name"
	ColumnGroup       = "group"
)

var canonicalColumns = map[string]bool{
	ColumnUsername:    true,
	ColumnEmail:       true,
	ColumnDisplayName: true,
	ColumnGroup:       true,
}

// Mapping describes how CSV headers map onto the canonical schema. Columns
// maps a canonical name to the header actually used in the file; columns
// not mentioned are matched by their canonical name. DefaultGroup, if set,
// is applied to rows whose group column is absent or empty.
type Mapping struct {
	Columns      map[string]string `yaml:"columns"`
	DefaultGroup string            `yaml:"default_group"`
}

// DefaultMapping returns the identity mapping
func DefaultMapping() *Mapping {
	return &Mapping{}
}

// Validate rejects mappings that reference unknown canonical columns
func (m *Mapping) Validate() error {
	for canonical, source := range m.Columns {
		if !canonicalColumns[canonical] {
			return goerr.New("unknown canonical column in mapping",
				goerr.V("column", canonical),
				goerr.T(ErrTagInput))
		}
		if source == "" {
			return goerr.New("empty source column in mapping",
				goerr.V("column", canonical),
				goerr.T(ErrTagInput))
		}
	}
	return nil
}

// SourceColumn returns the header name carrying the given canonical column
func (m *Mapping) SourceColumn(canonical string) string {
	if m.Columns != nil {
		if src, ok := m.Columns[canonical]; ok {
			return src
		}
	}
	return canonical
}

// Canonicalize translates one file header name to its canonical column
// name, or returns the header unchanged if it is not mapped.
func (m *Mapping) Canonicalize(header string) string {
	for canonical := range canonicalColumns {
		if m.SourceColumn(canonical) == header {
			return canonical
		}
	}
	return header
}
