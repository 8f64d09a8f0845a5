package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendora/internal/schema"
)

func TestICTServiceTypes(t *testing.T) {
	rows := ICTServiceTypes()
	require.Len(t, rows, 19, "one row per service category")

	seen := map[string]bool{}
	for _, row := range rows {
		t.Run(row["identifier"], func(t *testing.T) {
			assert.False(t, seen[row["identifier"]], "identifier must be unique")
			seen[row["identifier"]] = true

			res, err := schema.ValidateRow(schema.TableICTServicesType, row)
			require.NoError(t, err)
			assert.True(t, res.OK(), "violations: %v", res.Violations)
		})
	}
}

// TestDemoRegisterIsConsistent replays the demo register through the
// validator and a lookup backed by the rows inserted so far, so a broken
// seed or a wrong insertion order fails here instead of against a real
// database.
func TestDemoRegisterIsConsistent(t *testing.T) {
	inserted := map[string]bool{}
	record := func(tableID string, row schema.Row) {
		table, err := schema.Describe(tableID)
		require.NoError(t, err)
		for _, col := range table.Columns {
			if col.PrimaryKey {
				inserted[tableID+"."+col.Name+"="+row[col.Name]] = true
			}
		}
	}
	lookup := func(_ context.Context, tableID string, key schema.Row) (bool, error) {
		for col, v := range key {
			return inserted[tableID+"."+col+"="+v], nil
		}
		return false, nil
	}

	for _, row := range ICTServiceTypes() {
		record(schema.TableICTServicesType, row)
	}

	for _, batch := range DemoRegister() {
		for i, row := range batch.Rows {
			res, err := schema.ValidateRow(batch.TableID, row)
			require.NoError(t, err)
			require.True(t, res.OK(), "%s row %d: %v", batch.TableID, i, res.Violations)

			refs, err := schema.CheckReferentialIntegrity(context.Background(), batch.TableID, row, lookup)
			require.NoError(t, err)
			require.True(t, refs.OK(), "%s row %d: %v", batch.TableID, i, refs.Violations)

			record(batch.TableID, row)
		}
	}
}
