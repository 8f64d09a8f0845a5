package store

import (
	"fmt"
	"strings"

	"opendora/internal/schema"
)

// pgSchema is the Postgres schema holding every register table.
const pgSchema = "roi"

// createOrder lists the register tables so that every referenced table
// is created before its referrers. The registry orders tables by
// regulatory code, which puts the codeless ICT service-type lookup
// after supply_chain; DDL needs it earlier.
var createOrder = []string{
	schema.TableMaintainingEntity,
	schema.TableRegisterEntity,
	schema.TableBranch,
	schema.TableGeneralInformation,
	schema.TableSpecificInformation,
	schema.TableIntraGroup,
	schema.TableReceivingSigningEntity,
	schema.TableSigningServiceProvider,
	schema.TableProvidingSigningEntity,
	schema.TableUsingEntity,
	schema.TableServiceProvider,
	schema.TableICTServicesType,
	schema.TableSupplyChain,
	schema.TableFunctionIdentification,
	schema.TableAssessment,
}

func physicalTable(tableID string) string {
	return pgSchema + "." + tableID
}

func columnType(c *schema.Column) string {
	switch c.Type {
	case schema.TypeLEI:
		return "char(20)"
	case schema.TypeCountry:
		return "char(2)"
	case schema.TypeCurrency:
		return "char(3)"
	case schema.TypeDate:
		return "date"
	case schema.TypeBool:
		return "boolean"
	case schema.TypeInt:
		return "integer"
	case schema.TypeMonetary:
		return "numeric(20,2)"
	default:
		if c.MaxLen > 0 {
			return fmt.Sprintf("varchar(%d)", c.MaxLen)
		}
		return "text"
	}
}

// createTableSQL renders the CREATE TABLE statement for one register
// table, including the composite primary key and foreign keys.
func createTableSQL(t *schema.Table) string {
	var defs []string
	for i := range t.Columns {
		c := &t.Columns[i]
		def := c.Name + " " + columnType(c)
		if c.Required {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	if pk := t.PrimaryKey(); len(pk) > 0 {
		defs = append(defs, "PRIMARY KEY ("+strings.Join(pk, ", ")+")")
	}
	for _, fk := range t.ForeignKeys() {
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			fk.Name, physicalTable(fk.Ref.Table), fk.Ref.Column))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
		physicalTable(t.ID), strings.Join(defs, ",\n\t"))
}

// schemaSQL renders the full DDL for the register: schema, every table
// in dependency order, and the submission log.
func schemaSQL() ([]string, error) {
	stmts := []string{"CREATE SCHEMA IF NOT EXISTS " + pgSchema}
	for _, id := range createOrder {
		t, err := schema.Describe(id)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, createTableSQL(t))
	}
	stmts = append(stmts, `CREATE TABLE IF NOT EXISTS `+pgSchema+`.submissions (
	submission_id uuid PRIMARY KEY,
	table_id text NOT NULL,
	accepted integer NOT NULL,
	rejected integer NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`)
	return stmts, nil
}
