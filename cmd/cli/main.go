package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-relay/pkg/models/domain"
	"github.com/de-tools/report-relay/pkg/runtime/terminal"
	"github.com/de-tools/report-relay/pkg/services/source"
	"github.com/de-tools/report-relay/pkg/store/postgres"
	"github.com/de-tools/report-relay/pkg/store/sqlite"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: source.NewRegistry(map[domain.SourceKind]source.ConnectorFactory{
			domain.SourcePostgres: postgres.NewConnector,
			domain.SourceSqlite:   sqlite.NewConnector,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
