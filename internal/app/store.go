package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clicktionary-backend/internal/adapter/postgres"
	pgvocabulary "github.com/heartmarshall/clicktionary-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/clicktionary-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/difficulty"
	"github.com/heartmarshall/clicktionary-backend/internal/service/vocabulary"
	"github.com/heartmarshall/clicktionary-backend/internal/transport/rest"
)

// store is the vocabulary backend selected by store.driver.
type store struct {
	vocabulary *vocabulary.Service
	ping       rest.PingFunc
	close      func()
}

func openStore(ctx context.Context, cfg *config.Config, table *difficulty.Table, logger *slog.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		logger.Info("store opened", slog.String("driver", cfg.Store.Driver))
		return &store{
			vocabulary: vocabulary.NewService(logger, pgvocabulary.New(pool), postgres.NewTxManager(pool), table),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("store opened",
			slog.String("driver", cfg.Store.Driver),
			slog.String("path", cfg.Store.SQLitePath),
		)
		return &store{
			vocabulary: vocabulary.NewService(logger, sqlite.NewVocabularyRepo(db), sqlite.NewTxManager(db), table),
			ping:       db.PingContext,
			close:      func() { db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// loadTable reads the configured difficulty tables, or the bundled one.
func loadTable(cfg config.ReaderConfig, logger *slog.Logger) (*difficulty.Table, error) {
	if len(cfg.TablePaths) == 0 {
		table := difficulty.Default()
		logger.Info("difficulty table loaded", slog.String("source", "bundled"), slog.Int("words", table.Len()))
		return table, nil
	}

	table, err := difficulty.Load(cfg.TablePaths...)
	if err != nil {
		return nil, err
	}
	logger.Info("difficulty table loaded",
		slog.Any("paths", cfg.TablePaths),
		slog.Int("words", table.Len()),
	)
	return table, nil
}
