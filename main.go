// roi maintains a DORA Register of Information: it validates candidate
// rows against the regulatory table schemas and persists accepted rows
// in PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"opendora/internal/cli"
	"opendora/internal/config"
	"opendora/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	command := os.Args[1]
	args := os.Args[2:]

	// Schema-only commands work without a database connection.
	var err error
	switch command {
	case "help":
		printUsage()
		return 0
	case "tables":
		err = cli.RunTables(args)
	case "describe":
		err = cli.RunDescribe(args)
	case "validate":
		err = cli.RunValidate(args)
	default:
		err = runWithStore(command, args)
	}

	if err != nil {
		log.Printf("%s failed: %v", command, err)
		return 1
	}
	return 0
}

func runWithStore(command string, args []string) error {
	cfg := config.GetStoreConfig()
	if config.IsMockMode() {
		return fmt.Errorf("store type %q has no database; only the schema commands are available", cfg.Type)
	}

	st, err := store.NewStore(cfg.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to connect to register database: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	switch command {
	case "init-db":
		if err := st.InitDB(ctx); err != nil {
			return err
		}
		fmt.Println("Register database initialized successfully.")
		return nil
	case "seed":
		return cli.RunSeed(ctx, st, args)
	case "import":
		return cli.RunImport(ctx, st, args)
	case "export":
		return cli.RunExport(ctx, st, args)
	case "status":
		return cli.RunStatus(ctx, st, args)
	case "show":
		return cli.RunShow(ctx, st, args)
	case "mark-deleted":
		return cli.RunMarkDeleted(ctx, st, args)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println(`roi - DORA Register of Information

Usage:
  roi <command> [arguments]

Schema commands (no database required):
  tables                         List the register tables
  describe <table>               Show the column reference of a table
  validate <table> <file>        Validate rows from a CSV or JSON file

Register commands (require DB_CONN_STRING):
  init-db                        Create the register schema and tables
  seed                           Load the ICT service taxonomy and demo data
  import <table> <file>          Validate and insert rows as one submission
  export <table>                 Write a table's content to stdout as CSV
  status                         Show the row count of every table
  show <table> <key-value>...    Print a single row by its primary key
  mark-deleted <lei> <date>      Record the logical removal of an entity

  help                           Show this help`)
}
