package cli

import (
	"fmt"

	"opendora/internal/schema"
)

// RunValidate checks rows from a file against a table's schema without
// touching the database. Every violation of every row is printed, so a
// data preparer can fix a whole file in one pass. Referential checks
// need the register content and run on import instead.
func RunValidate(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: validate <table> <file.csv|file.json>")
	}
	tableID, path := args[0], args[1]

	if _, err := schema.Describe(tableID); err != nil {
		return err
	}

	rows, err := ReadRows(path)
	if err != nil {
		return err
	}

	invalid := 0
	for i, row := range rows {
		res, err := schema.ValidateRow(tableID, row)
		if err != nil {
			return err
		}
		if res.OK() {
			continue
		}
		invalid++
		fmt.Printf("row %d:\n", i+1)
		printViolations(res)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d rows failed validation", invalid, len(rows))
	}
	fmt.Printf("%d rows valid.\n", len(rows))
	return nil
}
