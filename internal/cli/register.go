package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"opendora/internal/schema"
	"opendora/internal/schema/seed"
	"opendora/internal/store"
)

// RunImport validates rows from a file and inserts the valid ones into
// the register as a single submission. Rejected rows are reported with
// their full violation list.
func RunImport(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: import <table> <file.csv|file.json>")
	}
	tableID, path := args[0], args[1]

	rows, err := ReadRows(path)
	if err != nil {
		return err
	}

	report, err := st.ImportBatch(ctx, tableID, rows)
	if err != nil {
		return err
	}

	fmt.Printf("submission %s: %d rows accepted, %d rejected\n",
		report.SubmissionID, report.Accepted, len(report.Rejected))
	for _, rej := range report.Rejected {
		fmt.Printf("row %d:\n", rej.Index+1)
		printViolations(rej.Result)
	}
	if len(report.Rejected) > 0 {
		return fmt.Errorf("%d rows rejected", len(report.Rejected))
	}
	return nil
}

// RunExport writes the current content of a table to stdout as CSV,
// using the submission text representation so the output validates and
// re-imports cleanly.
func RunExport(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: export <table>")
	}
	tableID := args[0]

	t, err := schema.Describe(tableID)
	if err != nil {
		return err
	}
	rows, err := st.ListRows(ctx, tableID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range rows {
		for i, c := range t.Columns {
			record[i] = row[c.Name]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// RunSeed loads the ICT service-type taxonomy and the demo register.
func RunSeed(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: seed")
	}

	taxonomy, err := st.ImportBatch(ctx, schema.TableICTServicesType, seed.ICTServiceTypes())
	if err != nil {
		return fmt.Errorf("seeding %s: %w", schema.TableICTServicesType, err)
	}
	if len(taxonomy.Rejected) > 0 {
		return fmt.Errorf("seeding %s: %d rows rejected", schema.TableICTServicesType, len(taxonomy.Rejected))
	}

	for _, batch := range seed.DemoRegister() {
		report, err := st.ImportBatch(ctx, batch.TableID, batch.Rows)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", batch.TableID, err)
		}
		if len(report.Rejected) > 0 {
			rej := report.Rejected[0]
			return fmt.Errorf("seeding %s: %d rows rejected, first: %v",
				batch.TableID, len(report.Rejected), rej.Result.Violations)
		}
		fmt.Printf("%s: %d rows\n", batch.TableID, report.Accepted)
	}
	return nil
}

// RunStatus prints the number of rows held for every register table.
func RunStatus(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: status")
	}

	for _, t := range schema.Tables() {
		n, err := st.CountRows(ctx, t.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%-28s %6d rows\n", t.ID, n)
	}
	return nil
}

// RunShow looks up a single row by its primary key and prints it. Key
// values are given in the order describe lists the primary-key columns.
func RunShow(ctx context.Context, st *store.Store, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: show <table> <key-value>...")
	}
	tableID := args[0]

	t, err := schema.Describe(tableID)
	if err != nil {
		return err
	}
	pk := t.PrimaryKey()
	if len(args)-1 != len(pk) {
		return fmt.Errorf("table %s needs %d key values (%v), got %d",
			tableID, len(pk), pk, len(args)-1)
	}
	key := schema.Row{}
	for i, col := range pk {
		key[col] = args[i+1]
	}

	row, err := st.GetRow(ctx, tableID, key)
	if err != nil {
		return err
	}
	for _, c := range t.Columns {
		if v, ok := row[c.Name]; ok {
			fmt.Printf("%-44s %s\n", c.Name, v)
		}
	}
	return nil
}

// RunMarkDeleted records the logical removal of a register entity.
func RunMarkDeleted(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mark-deleted <lei> <date>")
	}
	lei, dateArg := args[0], args[1]

	if !schema.IsLEI(lei) {
		return fmt.Errorf("%q is not a valid LEI", lei)
	}
	when, err := time.Parse(schema.DateLayout, dateArg)
	if err != nil {
		return fmt.Errorf("%q is not a date in format %s", dateArg, schema.DateLayout)
	}

	if err := st.MarkEntityDeleted(ctx, lei, when); err != nil {
		return err
	}
	fmt.Printf("entity %s marked deleted as of %s\n", lei, dateArg)
	return nil
}
