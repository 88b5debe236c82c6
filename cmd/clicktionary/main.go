// Command clicktionary opens a text file in a terminal reader. Words are
// colored by difficulty; pressing enter on a word shows its dictionary
// entry and s saves it to a local vocabulary.
//
// Usage:
//
//	clicktionary [flags] FILE
//
// FILE may be plain text, Markdown or EPUB.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/clicktionary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/clicktionary-backend/internal/app"
	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/difficulty"
	"github.com/heartmarshall/clicktionary-backend/internal/document"
	"github.com/heartmarshall/clicktionary-backend/internal/service/lookup"
	"github.com/heartmarshall/clicktionary-backend/internal/service/reader"
	"github.com/heartmarshall/clicktionary-backend/internal/service/vocabulary"
	"github.com/heartmarshall/clicktionary-backend/internal/tui"
	"github.com/heartmarshall/clicktionary-backend/pkg/ctxutil"
)

const (
	dictionaryURL  = "https://api.dictionaryapi.dev/api/v2/entries/en"
	translationURL = "https://api.mymemory.translated.net/get"
	maxFileBytes   = 64 << 20
)

// localUser owns the vocabulary of the terminal reader.
var localUser = uuid.NewSHA1(uuid.NameSpaceURL, []byte("clicktionary:local"))

func main() {
	var (
		dbPath   = flag.String("db", defaultDBPath(), "SQLite vocabulary file")
		source   = flag.String("source", "", "source language code (empty = auto)")
		target   = flag.String("target", "", "target language code (empty = default)")
		caps     = flag.String("caps", "rich", "list caps: compact or rich")
		tables   = flag.String("table", "", "comma-separated difficulty CSV files (empty = bundled)")
		offline  = flag.Bool("offline", false, "disable translation requests")
		logPath  = flag.String("log", "", "write logs to this file")
		logLevel = flag.String("log-level", "info", "log level")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: clicktionary [flags] FILE\n\nSupported formats: %v\n\n", document.SupportedFormats())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewLoggerTo(config.LogConfig{Level: *logLevel, Format: "json"}, logOut)

	err := run(context.Background(), logger, options{
		file:    flag.Arg(0),
		dbPath:  *dbPath,
		source:  *source,
		target:  *target,
		caps:    *caps,
		tables:  config.SplitList(*tables),
		offline: *offline,
	})
	if err != nil {
		logger.Error("clicktionary failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	file    string
	dbPath  string
	source  string
	target  string
	caps    string
	tables  []string
	offline bool
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	doc, err := document.Load(opts.file)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.file, err)
	}

	table := difficulty.Default()
	if len(opts.tables) > 0 {
		if table, err = difficulty.Load(opts.tables...); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(opts.dbPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := sqlite.Open(ctx, opts.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	var tr interface {
		Translate(ctx context.Context, text, source, target string) (string, error)
	} = translate.NewStub()
	if !opts.offline {
		tr = translate.NewMyMemory(translationURL, "", 10*time.Second, logger)
	}

	words, err := lookup.NewService(logger,
		freedict.NewProvider(dictionaryURL, 10*time.Second, logger),
		tr, table,
		config.LookupConfig{CapsTier: opts.caps, CacheSize: 1024, CacheTTL: time.Hour},
		nil,
	)
	if err != nil {
		return err
	}

	analyzed, err := reader.NewService(logger, table, nil, tr, config.ReaderConfig{MaxTextBytes: maxFileBytes}).
		Analyze(ctx, reader.AnalyzeInput{Text: doc.Text, Language: opts.source})
	if err != nil {
		return err
	}
	logger.Info("document opened",
		slog.String("path", opts.file),
		slog.String("format", doc.Format),
		slog.Int("words", analyzed.Summary.Words),
	)

	vocab := vocabulary.NewService(logger, sqlite.NewVocabularyRepo(db), sqlite.NewTxManager(db), table)

	m := tui.New(ctxutil.WithUserID(ctx, localUser), analyzed.Segments, words, vocab, tui.Options{
		Title:  doc.Title,
		Source: opts.source,
		Target: opts.target,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run reader: %w", err)
	}
	return nil
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "clicktionary.db"
	}
	return filepath.Join(dir, "clicktionary", "vocabulary.db")
}
