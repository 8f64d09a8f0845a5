package cli

import (
	"fmt"
	"strings"

	"opendora/internal/schema"
)

// RunTables prints every table of the register with its regulatory code.
func RunTables(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: tables")
	}
	fmt.Printf("%-8s %-26s %s\n", "CODE", "TABLE", "NAME")
	for _, t := range schema.Tables() {
		code := t.Code
		if code == "" {
			code = "-"
		}
		fmt.Printf("%-8s %-26s %s\n", code, t.ID, t.Name)
	}
	return nil
}

// RunDescribe prints the column reference of one table: title number,
// name, type, constraints and the official description.
func RunDescribe(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: describe <table>")
	}

	t, err := schema.Describe(args[0])
	if err != nil {
		return err
	}

	if t.Code != "" {
		fmt.Printf("%s — %s\n\n", t.Code, t.Name)
	} else {
		fmt.Printf("%s\n\n", t.Name)
	}

	fmt.Printf("%-6s %-45s %-10s %-9s %s\n", "TITLE", "COLUMN", "TYPE", "FLAGS", "DESCRIPTION")
	for _, c := range t.Columns {
		var flags []string
		if c.PrimaryKey {
			flags = append(flags, "PK")
		}
		if c.Required {
			flags = append(flags, "REQ")
		}
		if c.Ref != nil {
			flags = append(flags, "FK")
		}
		title := c.Title
		if title == "" {
			title = "-"
		}
		fmt.Printf("%-6s %-45s %-10s %-9s %s\n", title, c.Name, c.Type, strings.Join(flags, ","), c.Description)
	}

	if fks := t.ForeignKeys(); len(fks) > 0 {
		fmt.Println()
		for _, fk := range fks {
			fmt.Printf("%s references %s.%s\n", fk.Name, fk.Ref.Table, fk.Ref.Column)
		}
	}
	return nil
}
