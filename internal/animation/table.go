package animation

import (
	"fmt"
	"sort"

	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

// Table is the immutable animation lookup table. It is built once from
// validated definitions and only read afterwards.
type Table struct {
	defs  map[string]Definition
	names []string
}

// New validates each definition and builds a table from them. Duplicate
// names are rejected.
func New(defs ...Definition) (*Table, error) {
	table := &Table{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := table.defs[def.Name]; exists {
			return nil, motionerrors.NewValidationError(def.Name, fmt.Sprintf("duplicate animation name %q", def.Name), nil)
		}
		table.defs[def.Name] = def
		table.names = append(table.names, def.Name)
	}
	sort.Strings(table.names)
	return table, nil
}

// Resolve looks up a definition by name. The second return reports
// whether the name is registered.
func (t *Table) Resolve(name string) (Definition, bool) {
	def, ok := t.defs[name]
	return def, ok
}

// Names returns the registered animation names in sorted order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Len reports the number of registered animations.
func (t *Table) Len() int {
	return len(t.defs)
}

// Merge returns a new table combining the receiver with the given
// definitions. A definition sharing a name with an existing entry
// replaces it; new names are added. The result is re-validated.
func (t *Table) Merge(overrides ...Definition) (*Table, error) {
	merged := make([]Definition, 0, len(t.defs)+len(overrides))
	replaced := make(map[string]Definition, len(overrides))
	for _, def := range overrides {
		replaced[def.Name] = def
	}
	for _, name := range t.names {
		if def, ok := replaced[name]; ok {
			merged = append(merged, def)
			delete(replaced, name)
			continue
		}
		merged = append(merged, t.defs[name])
	}
	for _, def := range overrides {
		if _, pending := replaced[def.Name]; pending {
			merged = append(merged, def)
			delete(replaced, def.Name)
		}
	}
	return New(merged...)
}
