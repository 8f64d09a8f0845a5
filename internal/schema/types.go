// Package schema holds the canonical description of every table in the
// DORA Register of Information and validates candidate rows against it.
// The descriptors carry the regulatory table codes (B.01.01 .. B.07.01)
// and the official column title numbers (0010, 0020, ...) so that forms
// and reports can be generated from the registry alone.
package schema

// DataType is the semantic type of a column value as it arrives from a
// submission (all values are text at that point).
type DataType string

const (
	TypeString   DataType = "STRING"
	TypeLEI      DataType = "LEI"
	TypeCountry  DataType = "COUNTRY"  // ISO 3166-1 alpha-2
	TypeCurrency DataType = "CURRENCY" // ISO 4217
	TypeDate     DataType = "DATE"     // ISO 8601 calendar date
	TypeBool     DataType = "BOOLEAN"
	TypeInt      DataType = "INTEGER"
	TypeMonetary DataType = "MONETARY" // decimal, 2 fractional digits
)

// ForeignKey names the table and key column a column references.
// AllowSelf marks self-referencing keys for which the row may point at
// itself (a provider that is its own ultimate parent undertaking);
// without it a self-reference is rejected as a one-row cycle.
type ForeignKey struct {
	Table     string
	Column    string
	AllowSelf bool
}

// Column describes one register column: its semantic type, constraints,
// primary-key membership and optional foreign-key target. Title is the
// official column number from the reporting templates.
type Column struct {
	Name        string
	Title       string
	Description string
	Type        DataType
	Required    bool
	PrimaryKey  bool
	MinLen      int
	MaxLen      int
	// Enum restricts the value to a closed vocabulary when non-empty.
	Enum []string
	// NonNegative applies to MONETARY columns (amounts reported >= 0).
	NonNegative bool
	Ref         *ForeignKey
}

// Table describes one regulatory table of the register.
type Table struct {
	// ID is the internal identifier used throughout the module.
	ID string
	// Code is the official regulatory table code, empty for pure
	// lookup tables that have none.
	Code string
	// Name is the official display name from the reporting templates.
	Name    string
	Columns []Column
}

// Column returns the descriptor for the named column, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// PrimaryKey returns the names of the primary-key columns in schema order.
func (t *Table) PrimaryKey() []string {
	var key []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			key = append(key, c.Name)
		}
	}
	return key
}

// ForeignKeys returns the columns that reference another table's key,
// in schema order.
func (t *Table) ForeignKeys() []Column {
	var fks []Column
	for _, c := range t.Columns {
		if c.Ref != nil {
			fks = append(fks, c)
		}
	}
	return fks
}

// Row is a candidate record as submitted: column name to raw text value.
// Absent and empty values are equivalent.
type Row map[string]string
