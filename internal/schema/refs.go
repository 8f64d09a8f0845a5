package schema

import (
	"context"
	"fmt"
)

// LookupFunc answers whether a row exists in the identified table for
// the given key columns. The schema package owns no storage; the caller
// supplies the lookup, typically backed by the register store.
type LookupFunc func(ctx context.Context, tableID string, key Row) (bool, error)

// CheckReferentialIntegrity verifies every foreign-key column of the row
// against the referenced tables using the supplied lookup. Each dangling
// reference is reported as a violation naming the offending column and
// the referenced table. A self-referencing key equal to the row's own
// key is rejected as a one-row cycle unless the key allows it (an
// ultimate parent undertaking may be the provider itself). Lookup
// failures abort the check and are returned as errors.
func CheckReferentialIntegrity(ctx context.Context, tableID string, row Row, lookup LookupFunc) (ValidationResult, error) {
	t, err := Describe(tableID)
	if err != nil {
		return ValidationResult{}, err
	}

	norm := normalizeRow(t, row)
	res := ValidationResult{TableID: t.ID}

	for _, c := range t.ForeignKeys() {
		v := norm[c.Name]
		if v == "" {
			continue
		}
		if c.Ref.Table == t.ID && v == norm[c.Ref.Column] {
			if c.Ref.AllowSelf {
				continue
			}
			res.add(Violation{Column: c.Name, Kind: KindDanglingReference, RefTable: c.Ref.Table,
				Message: "row must not reference itself"})
			continue
		}
		exists, err := lookup(ctx, c.Ref.Table, Row{c.Ref.Column: v})
		if err != nil {
			return res, fmt.Errorf("lookup of %s.%s for column %s: %w", c.Ref.Table, c.Ref.Column, c.Name, err)
		}
		if !exists {
			res.add(Violation{Column: c.Name, Kind: KindDanglingReference, RefTable: c.Ref.Table,
				Message: fmt.Sprintf("references %s.%s %q which does not exist", c.Ref.Table, c.Ref.Column, v)})
		}
	}

	return res, nil
}
