package schema

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTable signals a table identifier that is not part of the
// register. This is a programming or configuration error, not a data
// quality problem.
var ErrUnknownTable = errors.New("unknown register table")

// registry maps table identifiers to their descriptors. Built once at
// package init and never mutated afterwards, so concurrent reads need
// no coordination.
var registry = map[string]*Table{}

func init() {
	for _, t := range []*Table{
		&maintainingEntity,
		&registerEntity,
		&branch,
		&generalInformation,
		&specificInformation,
		&intraGroup,
		&receivingSigningEntity,
		&signingServiceProvider,
		&providingSigningEntity,
		&usingEntity,
		&serviceProvider,
		&ictServicesType,
		&supplyChain,
		&functionIdentification,
		&assessment,
	} {
		if _, dup := registry[t.ID]; dup {
			panic("schema: duplicate table id " + t.ID)
		}
		registry[t.ID] = t
	}
}

// Describe returns the descriptor of the identified table. The returned
// Table is shared and must not be modified by callers.
func Describe(tableID string) (*Table, error) {
	t, ok := registry[tableID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, tableID)
	}
	return t, nil
}

// TableIDs returns all table identifiers in sorted order.
func TableIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Tables returns all table descriptors ordered by their regulatory code,
// lookup tables without a code last.
func Tables() []*Table {
	tables := make([]*Table, 0, len(registry))
	for _, t := range registry {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool {
		a, b := tables[i], tables[j]
		if (a.Code == "") != (b.Code == "") {
			return b.Code == ""
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.ID < b.ID
	})
	return tables
}
