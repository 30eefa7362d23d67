package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"

	"fincopilot/internal/core"
	"fincopilot/internal/dashboard"
	"fincopilot/internal/export"
	filestore "fincopilot/internal/store/file"
)

type Params struct {
	File   string `descr:"Path to the transactions JSON file" positional:"true"`
	Format string `descr:"Output format" alts:"table,json,xlsx" strict:"true" default:"table"`
	Config string `descr:"Path to a report config YAML file" default:""`
	Output string `descr:"Output path for xlsx format" default:"report.xlsx"`
}

func main() {
	boa.NewCmdT[Params]("fincopilot-report").
		WithShort("Render a transaction ledger as a table, JSON, or a workbook").
		WithLong("Reads a fincopilot transactions file and prints the ledger with dashboard totals, or exports it as an XLSX workbook.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	cfg := DefaultReportConfig()
	if params.Config != "" {
		loaded, err := LoadReportConfig(params.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	st, err := filestore.New(params.File)
	if err != nil {
		return fmt.Errorf("open transactions file: %w", err)
	}
	defer st.Close()

	txs, err := st.LoadAll(context.Background())
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	filtered := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if cfg.ShouldExclude(t.Category) {
			continue
		}
		filtered = append(filtered, t)
	}

	summary := dashboard.Summarize(filtered)

	switch params.Format {
	case "json":
		return printReportJSON(os.Stdout, summary)
	case "xlsx":
		f, err := os.Create(params.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := export.WriteXLSX(f, filtered, summary); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", params.Output)
		return nil
	default:
		printReportTable(os.Stdout, filtered, summary, cfg)
		return nil
	}
}
