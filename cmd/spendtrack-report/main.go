// Command spendtrack-report prints a spending statement for a month (or
// everything) from the SQLite archive, optionally exporting it as an xlsx
// workbook.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"spendtrack/internal/config"
	"spendtrack/internal/engine"
	applog "spendtrack/internal/log"
	"spendtrack/internal/report"
	"spendtrack/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: applog.ComponentReport})
	applog.SetDefault(logger)

	scope := flag.String("scope", engine.ScopeAll, "month to report on (YYYY-MM) or \"all\"")
	xlsxPath := flag.String("xlsx", "", "also export the statement to this xlsx file")
	flag.Parse()

	cfg := config.Load()

	archive, err := storage.NewSQLiteArchive(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open SQLite archive", applog.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer archive.Close()

	ctx := context.Background()
	records, err := archive.All(ctx)
	if err != nil {
		logger.Error("Failed to load records", applog.FieldError, err)
		os.Exit(1)
	}

	statement := report.Build(records, *scope, cfg.TrendMonths)
	report.PrintStatement(os.Stdout, statement)

	if *xlsxPath != "" {
		if err := report.WriteWorkbook(statement, *xlsxPath); err != nil {
			logger.Error("Failed to export workbook", applog.FieldError, err, "path", *xlsxPath)
			os.Exit(1)
		}
		logger.Info("Workbook exported", "path", *xlsxPath, applog.FieldScope, *scope)
	}
}
