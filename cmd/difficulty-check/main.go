// Command difficulty-check loads difficulty tables the way the server does
// and prints how many words fall in each band. Use it to validate CSV files
// before deploying them.
//
// Usage:
//
//	difficulty-check [file.csv ...]
//
// Without arguments the bundled table is checked.
//
// Exit codes: 0 = success, 1 = a file failed to load or is empty.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/clicktionary-backend/internal/app"
	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/difficulty"
	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

func main() {
	format := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: *format})

	var (
		table *difficulty.Table
		err   error
	)
	if flag.NArg() == 0 {
		table = difficulty.Default()
	} else {
		table, err = difficulty.Load(flag.Args()...)
		if err != nil {
			logger.Error("load difficulty table", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if table.Len() == 0 {
		logger.Error("difficulty table is empty", slog.Any("paths", flag.Args()))
		os.Exit(1)
	}

	counts := table.Counts()
	fmt.Printf("%-14s %7d\n", "words", table.Len())
	for _, band := range domain.Bands {
		fmt.Printf("%-14s %7d\n", band, counts[band])
	}
}
