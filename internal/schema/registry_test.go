package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeAllTables(t *testing.T) {
	for _, id := range TableIDs() {
		t.Run(id, func(t *testing.T) {
			table, err := Describe(id)
			require.NoError(t, err)
			require.NotEmpty(t, table.Columns, "table %s must declare columns", id)

			assert.NotEmpty(t, table.Name, "display name required")
			assert.NotEmpty(t, table.PrimaryKey(), "every table needs a primary key")

			for _, key := range table.PrimaryKey() {
				col := table.Column(key)
				require.NotNil(t, col, "primary key column %s must exist", key)
				assert.True(t, col.Required, "primary key column %s must be required", key)
			}

			for _, col := range table.Columns {
				assert.NotEmpty(t, col.Name)
				assert.NotEmpty(t, col.Description, "column %s.%s needs a description", id, col.Name)
			}
		})
	}
}

func TestDescribeUnknownTable(t *testing.T) {
	_, err := Describe("no_such_table")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTable))
	assert.Contains(t, err.Error(), "no_such_table")
}

func TestRegulatoryCodes(t *testing.T) {
	expected := map[string]string{
		TableMaintainingEntity:      "B.01.01",
		TableRegisterEntity:         "B.01.02",
		TableBranch:                 "B.01.03",
		TableGeneralInformation:     "B.02.01",
		TableSpecificInformation:    "B.02.02",
		TableIntraGroup:             "B.02.03",
		TableReceivingSigningEntity: "B.03.01",
		TableSigningServiceProvider: "B.03.02",
		TableProvidingSigningEntity: "B.03.03",
		TableUsingEntity:            "B.04.01",
		TableServiceProvider:        "B.05.01",
		TableSupplyChain:            "B.05.02",
		TableFunctionIdentification: "B.06.01",
		TableAssessment:             "B.07.01",
	}
	for id, code := range expected {
		table, err := Describe(id)
		require.NoError(t, err)
		assert.Equal(t, code, table.Code, "table %s", id)
	}

	lookup, err := Describe(TableICTServicesType)
	require.NoError(t, err)
	assert.Empty(t, lookup.Code, "lookup table has no regulatory code")
}

func TestForeignKeysTargetRegisteredTables(t *testing.T) {
	for _, table := range Tables() {
		for _, fk := range table.ForeignKeys() {
			target, err := Describe(fk.Ref.Table)
			require.NoError(t, err, "fk %s.%s points at unregistered table", table.ID, fk.Name)
			require.NotNil(t, target.Column(fk.Ref.Column),
				"fk %s.%s points at missing column %s.%s", table.ID, fk.Name, fk.Ref.Table, fk.Ref.Column)
			assert.True(t, target.Column(fk.Ref.Column).PrimaryKey,
				"fk %s.%s must reference a key column", table.ID, fk.Name)
		}
	}
}

func TestTablesOrderedByCode(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 15)
	assert.Equal(t, TableMaintainingEntity, tables[0].ID)
	assert.Equal(t, TableICTServicesType, tables[len(tables)-1].ID, "codeless lookup table sorts last")
}
